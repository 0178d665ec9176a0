package implementation

import (
	"context"
	"errors"
	"strings"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/mapper"
	"study-assistant-be/internal/model"
	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SummaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SummaryMapper
}

func NewSummaryRepository(db *gorm.DB) contract.SummaryRepository {
	return &SummaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSummaryMapper(),
	}
}

func (r *SummaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SummaryRepositoryImpl) Create(ctx context.Context, summary *entity.Summary) error {
	m := r.mapper.ToModel(summary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return contract.ErrDuplicateSummary
		}
		return err
	}
	*summary = *r.mapper.ToEntity(m)
	return nil
}

// isDuplicateKey detects unique violations on summaries.file_id. GORM's
// translated error covers most drivers; the SQLSTATE check covers raw pq
// errors that slip through without translation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "SQLSTATE 23505")
}

func (r *SummaryRepositoryImpl) Update(ctx context.Context, summary *entity.Summary) error {
	m := r.mapper.ToModel(summary)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*summary = *r.mapper.ToEntity(m)
	return nil
}

func (r *SummaryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Summary{}, id).Error
}

func (r *SummaryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Summary, error) {
	var m model.Summary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SummaryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Summary, error) {
	var models []*model.Summary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
