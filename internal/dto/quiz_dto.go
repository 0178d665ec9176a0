package dto

import (
	"time"

	"study-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type GenerateQuizRequest struct {
	FolderId   uuid.UUID   `json:"folder_id" validate:"required"`
	InstanceId *uuid.UUID  `json:"instance_id"`
	FileIds    []uuid.UUID `json:"file_ids" validate:"required,min=1"`
}

// FileOutcome reports how generation went for one source file. A failed file
// does not abort the quiz; its questions are simply absent.
type FileOutcome struct {
	FileId  uuid.UUID `json:"file_id"`
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
}

type GenerateQuizResponse struct {
	Id       uuid.UUID     `json:"id"`
	Title    string        `json:"title"`
	Outcomes []FileOutcome `json:"file_results"`
}

type ShowQuizResponse struct {
	Id         uuid.UUID         `json:"id"`
	Title      string            `json:"title"`
	FolderId   uuid.UUID         `json:"folder_id"`
	InstanceId *uuid.UUID        `json:"instance_id,omitempty"`
	FileIds    []uuid.UUID       `json:"file_ids"`
	Questions  []entity.Question `json:"questions"`
	CreatedAt  time.Time         `json:"created_at"`
}
