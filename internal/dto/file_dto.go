package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadFileResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

type ShowFileResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	MimeType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	FolderId  uuid.UUID `json:"folder_id"`
	CreatedAt time.Time `json:"created_at"`
}
