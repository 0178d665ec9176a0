package entity

import (
	"time"

	"github.com/google/uuid"
)

// Instance is a workspace inside a folder: a chat thread, a quiz board or a
// flashcard deck. Content is a free-form JSON document whose shape depends on
// the instance type.
type Instance struct {
	Id        uuid.UUID
	Name      string
	Type      string
	FolderId  uuid.UUID
	UserId    uuid.UUID
	Content   map[string]interface{}
	CreatedAt time.Time
	UpdatedAt *time.Time
}
