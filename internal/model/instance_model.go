package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Instance struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Type      string         `gorm:"type:varchar(50);not null;index"`
	FolderId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Content   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Instance) TableName() string {
	return "instances"
}
