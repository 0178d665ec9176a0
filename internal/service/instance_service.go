package service

import (
	"context"
	"time"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/apperror"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IInstanceService interface {
	GetAll(ctx context.Context, userId uuid.UUID, folderId *uuid.UUID, instanceType string) ([]*dto.ShowInstanceResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateInstanceRequest) (*dto.CreateInstanceResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowInstanceResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateInstanceRequest) (*dto.UpdateInstanceResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type instanceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewInstanceService(uowFactory unitofwork.RepositoryFactory) IInstanceService {
	return &instanceService{
		uowFactory: uowFactory,
	}
}

// initialContent seeds a new instance with the shape its type expects, so
// clients can render an empty workspace without special cases.
func initialContent(instanceType string) map[string]interface{} {
	switch instanceType {
	case constant.InstanceTypeChat:
		return map[string]interface{}{"lastMessage": nil, "messageCount": 0}
	case constant.InstanceTypeQuiz:
		return map[string]interface{}{"questions": []interface{}{}, "score": nil}
	case constant.InstanceTypeFlashcard:
		return map[string]interface{}{"cards": []interface{}{}, "lastReviewed": nil}
	default:
		return map[string]interface{}{}
	}
}

func (s *instanceService) GetAll(ctx context.Context, userId uuid.UUID, folderId *uuid.UUID, instanceType string) ([]*dto.ShowInstanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if folderId != nil {
		specs = append(specs, specification.ByFolderID{FolderID: *folderId})
	}
	if instanceType != "" {
		specs = append(specs, specification.ByType{Type: instanceType})
	}

	instances, err := uow.InstanceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowInstanceResponse, 0, len(instances))
	for _, inst := range instances {
		result = append(result, toInstanceResponse(inst))
	}
	return result, nil
}

func toInstanceResponse(inst *entity.Instance) *dto.ShowInstanceResponse {
	return &dto.ShowInstanceResponse{
		Id:        inst.Id,
		Name:      inst.Name,
		Type:      inst.Type,
		FolderId:  inst.FolderId,
		Content:   inst.Content,
		CreatedAt: inst.CreatedAt,
		UpdatedAt: inst.UpdatedAt,
	}
}

func (s *instanceService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateInstanceRequest) (*dto.CreateInstanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.FolderId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("folder not found")
	}

	instance := entity.Instance{
		Id:        uuid.New(),
		Name:      req.Name,
		Type:      req.Type,
		FolderId:  req.FolderId,
		UserId:    userId,
		Content:   initialContent(req.Type),
		CreatedAt: time.Now(),
	}

	if err := uow.InstanceRepository().Create(ctx, &instance); err != nil {
		return nil, err
	}

	return &dto.CreateInstanceResponse{Id: instance.Id}, nil
}

func (s *instanceService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowInstanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.InstanceRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, apperror.NotFound("instance not found")
	}

	return toInstanceResponse(instance), nil
}

func (s *instanceService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateInstanceRequest) (*dto.UpdateInstanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.InstanceRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, apperror.NotFound("instance not found")
	}

	now := time.Now()
	instance.Name = req.Name
	if req.Content != nil {
		instance.Content = req.Content
	}
	instance.UpdatedAt = &now

	if err := uow.InstanceRepository().Update(ctx, instance); err != nil {
		return nil, err
	}

	return &dto.UpdateInstanceResponse{Id: instance.Id}, nil
}

func (s *instanceService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.InstanceRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if instance == nil {
		return apperror.NotFound("instance not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.InstanceMessageRepository().DeleteAllByInstanceIds(ctx, []uuid.UUID{id}); err != nil {
		return err
	}
	if err := uow.InstanceRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
