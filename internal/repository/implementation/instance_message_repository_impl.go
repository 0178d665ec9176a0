package implementation

import (
	"context"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/mapper"
	"study-assistant-be/internal/model"
	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstanceMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InstanceMessageMapper
}

func NewInstanceMessageRepository(db *gorm.DB) contract.InstanceMessageRepository {
	return &InstanceMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewInstanceMessageMapper(),
	}
}

func (r *InstanceMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InstanceMessageRepositoryImpl) Create(ctx context.Context, message *entity.InstanceMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *InstanceMessageRepositoryImpl) DeleteAllByInstanceIds(ctx context.Context, instanceIds []uuid.UUID) error {
	if len(instanceIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("instance_id IN ?", instanceIds).Delete(&model.InstanceMessage{}).Error
}

func (r *InstanceMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InstanceMessage, error) {
	var models []*model.InstanceMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InstanceMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.InstanceMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
