package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// UserOwnedBy filters by owning user
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByFolderID filters folder-scoped rows (files, instances, quizzes, summaries)
type ByFolderID struct {
	FolderID uuid.UUID
}

func (s ByFolderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id = ?", s.FolderID)
}

// ByInstanceID filters instance-scoped rows (messages, quizzes)
type ByInstanceID struct {
	InstanceID uuid.UUID
}

func (s ByInstanceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("instance_id = ?", s.InstanceID)
}

// ByType filters instances by kind (chat, quiz, flashcard)
type ByType struct {
	Type string
}

func (s ByType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// ByFileID filters summaries by source file
type ByFileID struct {
	FileID uuid.UUID
}

func (s ByFileID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("file_id = ?", s.FileID)
}
