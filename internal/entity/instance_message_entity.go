package entity

import (
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

type InstanceMessage struct {
	Id          uuid.UUID
	InstanceId  uuid.UUID
	Role        string
	Content     string
	Attachments []Attachment
	CreatedAt   time.Time
}
