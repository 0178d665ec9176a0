package service

import (
	"context"
	"time"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/apperror"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFolderService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowFolderResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.CreateFolderResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowFolderResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.UpdateFolderResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type folderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFolderService(uowFactory unitofwork.RepositoryFactory) IFolderService {
	return &folderService{
		uowFactory: uowFactory,
	}
}

func (s *folderService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.FolderRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowFolderResponse, 0, len(folders))
	for _, folder := range folders {
		result = append(result, &dto.ShowFolderResponse{
			Id:          folder.Id,
			Name:        folder.Name,
			Description: folder.Description,
			CreatedAt:   folder.CreatedAt,
			UpdatedAt:   folder.UpdatedAt,
		})
	}
	return result, nil
}

func (s *folderService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.CreateFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder := entity.Folder{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		UserId:      userId,
		CreatedAt:   time.Now(),
	}

	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}

	return &dto.CreateFolderResponse{Id: folder.Id}, nil
}

func (s *folderService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("folder not found")
	}

	return &dto.ShowFolderResponse{
		Id:          folder.Id,
		Name:        folder.Name,
		Description: folder.Description,
		CreatedAt:   folder.CreatedAt,
		UpdatedAt:   folder.UpdatedAt,
	}, nil
}

func (s *folderService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.UpdateFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("folder not found")
	}

	now := time.Now()
	folder.Name = req.Name
	folder.Description = req.Description
	folder.UpdatedAt = &now

	if err := uow.FolderRepository().Update(ctx, folder); err != nil {
		return nil, err
	}

	return &dto.UpdateFolderResponse{Id: folder.Id}, nil
}

// Delete removes a folder and its instances with their messages. Files,
// quizzes and summaries stay behind so regenerating a folder's workspaces
// never destroys uploaded material.
func (s *folderService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if folder == nil {
		return apperror.NotFound("folder not found")
	}

	instances, err := uow.InstanceRepository().FindAll(ctx, specification.ByFolderID{FolderID: id})
	if err != nil {
		return err
	}
	instanceIds := make([]uuid.UUID, 0, len(instances))
	for _, inst := range instances {
		instanceIds = append(instanceIds, inst.Id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.InstanceMessageRepository().DeleteAllByInstanceIds(ctx, instanceIds); err != nil {
		return err
	}

	if err := uow.InstanceRepository().DeleteAllByFolderId(ctx, id); err != nil {
		return err
	}

	if err := uow.FolderRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
