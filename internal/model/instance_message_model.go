package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InstanceMessage struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InstanceId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Role        string         `gorm:"type:varchar(50);not null"`
	Content     string         `gorm:"type:text"`
	Attachments datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (InstanceMessage) TableName() string {
	return "instance_messages"
}
