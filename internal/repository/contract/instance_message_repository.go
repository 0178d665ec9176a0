package contract

import (
	"context"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InstanceMessageRepository interface {
	Create(ctx context.Context, message *entity.InstanceMessage) error
	DeleteAllByInstanceIds(ctx context.Context, instanceIds []uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InstanceMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
