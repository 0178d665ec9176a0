package implementation

import (
	"context"
	"errors"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/mapper"
	"study-assistant-be/internal/model"
	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstanceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InstanceMapper
}

func NewInstanceRepository(db *gorm.DB) contract.InstanceRepository {
	return &InstanceRepositoryImpl{
		db:     db,
		mapper: mapper.NewInstanceMapper(),
	}
}

func (r *InstanceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InstanceRepositoryImpl) Create(ctx context.Context, instance *entity.Instance) error {
	m := r.mapper.ToModel(instance)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*instance = *r.mapper.ToEntity(m)
	return nil
}

func (r *InstanceRepositoryImpl) Update(ctx context.Context, instance *entity.Instance) error {
	m := r.mapper.ToModel(instance)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*instance = *r.mapper.ToEntity(m)
	return nil
}

func (r *InstanceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Instance{}, id).Error
}

func (r *InstanceRepositoryImpl) DeleteAllByFolderId(ctx context.Context, folderId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("folder_id = ?", folderId).Delete(&model.Instance{}).Error
}

func (r *InstanceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Instance, error) {
	var m model.Instance
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InstanceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Instance, error) {
	var models []*model.Instance
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
