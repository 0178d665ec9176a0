package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// One summary per source file. The unique index backs the idempotent generate
// flow: concurrent workers racing on the same file hit a duplicate key instead
// of writing twice.
type Summary struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string         `gorm:"type:varchar(512);not null"`
	FolderId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileId    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Chapters  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (Summary) TableName() string {
	return "summaries"
}
