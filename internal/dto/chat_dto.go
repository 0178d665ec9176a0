package dto

import (
	"time"

	"study-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	InstanceId uuid.UUID          `json:"instance_id" validate:"required"`
	Message    string             `json:"message"`
	Attachment *entity.Attachment `json:"attachment"`
}

type SendMessageResponse struct {
	Reply     string    `json:"reply"`
	MessageId uuid.UUID `json:"message_id"`
}

type ShowMessageResponse struct {
	Id          uuid.UUID           `json:"id"`
	Role        string              `json:"role"`
	Content     string              `json:"content"`
	Attachments []entity.Attachment `json:"attachments,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}
