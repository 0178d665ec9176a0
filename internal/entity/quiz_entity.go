package entity

import (
	"time"

	"github.com/google/uuid"
)

type Option struct {
	Id   int    `json:"id"`
	Text string `json:"text"`
}

type Question struct {
	Id            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []Option `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	SourceFileId  string   `json:"sourceFileId,omitempty"`
}

// Quiz keeps both FileId (first source file, kept for older clients) and the
// full FileIds list.
type Quiz struct {
	Id         uuid.UUID
	Title      string
	FolderId   uuid.UUID
	InstanceId *uuid.UUID
	FileId     uuid.UUID
	FileIds    []uuid.UUID
	UserId     uuid.UUID
	Questions  []Question
	CreatedAt  time.Time
}
