package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/apperror"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/pkg/events"
	pktNats "study-assistant-be/pkg/nats"
	"study-assistant-be/pkg/storage"

	"github.com/google/uuid"
)

type IFileService interface {
	Upload(ctx context.Context, userId, folderId uuid.UUID, name string, reader io.Reader, size int64, contentType string) (*dto.UploadFileResponse, error)
	GetAllByFolder(ctx context.Context, userId, folderId uuid.UUID) ([]*dto.ShowFileResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type fileService struct {
	uowFactory     unitofwork.RepositoryFactory
	store          storage.ObjectStore
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewFileService(uowFactory unitofwork.RepositoryFactory, store storage.ObjectStore, eventPublisher *pktNats.Publisher, log logger.ILogger) IFileService {
	return &fileService{
		uowFactory:     uowFactory,
		store:          store,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *fileService) Upload(ctx context.Context, userId, folderId uuid.UUID, name string, reader io.Reader, size int64, contentType string) (*dto.UploadFileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: folderId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("folder not found")
	}

	fileId := uuid.New()
	objectName := fmt.Sprintf("%s/%s%s", folderId, fileId, filepath.Ext(name))

	url, err := s.store.Upload(ctx, reader, size, objectName, contentType)
	if err != nil {
		return nil, apperror.Upstream("failed to store file", err)
	}

	file := entity.File{
		Id:        fileId,
		Name:      name,
		URL:       url,
		MimeType:  contentType,
		Size:      size,
		FolderId:  folderId,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.FileRepository().Create(ctx, &file); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewFileUploadedEvent(file.Id.String(), folderId.String(), userId.String())); err != nil {
		s.log.Warn("file", "failed to publish file uploaded event", map[string]interface{}{"error": err.Error()})
	}

	return &dto.UploadFileResponse{
		Id:   file.Id,
		Name: file.Name,
		URL:  file.URL,
	}, nil
}

func (s *fileService) GetAllByFolder(ctx context.Context, userId, folderId uuid.UUID) ([]*dto.ShowFileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	files, err := uow.FileRepository().FindAll(ctx,
		specification.ByFolderID{FolderID: folderId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowFileResponse, 0, len(files))
	for _, f := range files {
		result = append(result, &dto.ShowFileResponse{
			Id:        f.Id,
			Name:      f.Name,
			URL:       f.URL,
			MimeType:  f.MimeType,
			Size:      f.Size,
			FolderId:  f.FolderId,
			CreatedAt: f.CreatedAt,
		})
	}
	return result, nil
}

func (s *fileService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	file, err := uow.FileRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if file == nil {
		return apperror.NotFound("file not found")
	}

	return uow.FileRepository().Delete(ctx, id)
}
