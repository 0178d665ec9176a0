package contract

import (
	"context"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InstanceRepository interface {
	Create(ctx context.Context, instance *entity.Instance) error
	Update(ctx context.Context, instance *entity.Instance) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByFolderId(ctx context.Context, folderId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Instance, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Instance, error)
}
