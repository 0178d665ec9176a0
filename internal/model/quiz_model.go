package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string         `gorm:"type:varchar(255);not null"`
	FolderId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	InstanceId *uuid.UUID     `gorm:"type:uuid;index"`
	FileId     uuid.UUID      `gorm:"type:uuid;not null"`
	FileIds    datatypes.JSON `gorm:"type:jsonb"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Questions  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
