package unitofwork

import (
	"context"

	"study-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FolderRepository() contract.FolderRepository
	InstanceRepository() contract.InstanceRepository
	InstanceMessageRepository() contract.InstanceMessageRepository
	FileRepository() contract.FileRepository
	QuizRepository() contract.QuizRepository
	SummaryRepository() contract.SummaryRepository
}
