package contract

import (
	"context"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuizRepository interface {
	Create(ctx context.Context, quiz *entity.Quiz) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Quiz, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error)
}
