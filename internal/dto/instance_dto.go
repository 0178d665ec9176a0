package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInstanceRequest struct {
	Name     string    `json:"name" validate:"required,max=255"`
	Type     string    `json:"type" validate:"required,oneof=chat quiz flashcard"`
	FolderId uuid.UUID `json:"folder_id" validate:"required"`
}

type CreateInstanceResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowInstanceResponse struct {
	Id        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	FolderId  uuid.UUID              `json:"folder_id"`
	Content   map[string]interface{} `json:"content"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at"`
}

type UpdateInstanceRequest struct {
	Id      uuid.UUID
	Name    string                 `json:"name" validate:"required,max=255"`
	Content map[string]interface{} `json:"content"`
}

type UpdateInstanceResponse struct {
	Id uuid.UUID `json:"id"`
}
