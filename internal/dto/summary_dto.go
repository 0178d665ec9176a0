package dto

import (
	"time"

	"study-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type GenerateSummariesRequest struct {
	FolderId uuid.UUID `json:"folder_id" validate:"required"`
}

type GenerateSummariesResponse struct {
	Message   string                 `json:"message,omitempty"`
	Summaries []*ShowSummaryResponse `json:"summaries"`
}

type ShowSummaryResponse struct {
	Id        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	FolderId  uuid.UUID        `json:"folder_id"`
	FileId    uuid.UUID        `json:"file_id"`
	Chapters  []entity.Chapter `json:"chapters"`
	CreatedAt time.Time        `json:"created_at"`
}
