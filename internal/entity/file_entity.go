package entity

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	Id        uuid.UUID
	Name      string
	URL       string
	MimeType  string
	Size      int64
	FolderId  uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
}
