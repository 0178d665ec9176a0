package contract

import (
	"context"
	"errors"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ErrDuplicateSummary signals that a summary already exists for the file.
// Callers treat it as a benign skip, not a failure.
var ErrDuplicateSummary = errors.New("summary already exists for file")

type SummaryRepository interface {
	Create(ctx context.Context, summary *entity.Summary) error
	Update(ctx context.Context, summary *entity.Summary) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Summary, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Summary, error)
}
