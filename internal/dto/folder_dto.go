package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFolderRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

type CreateFolderResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowFolderResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type UpdateFolderRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

type UpdateFolderResponse struct {
	Id uuid.UUID `json:"id"`
}
