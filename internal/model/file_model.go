package model

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(512);not null"`
	URL       string    `gorm:"type:text;not null"`
	MimeType  string    `gorm:"type:varchar(255)"`
	Size      int64     `gorm:"not null;default:0"`
	FolderId  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (File) TableName() string {
	return "files"
}
