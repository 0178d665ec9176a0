package entity

import (
	"time"

	"github.com/google/uuid"
)

type Chapter struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Summary struct {
	Id        uuid.UUID
	Title     string
	FolderId  uuid.UUID
	FileId    uuid.UUID
	UserId    uuid.UUID
	Chapters  []Chapter
	CreatedAt time.Time
}
