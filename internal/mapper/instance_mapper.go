package mapper

import (
	"encoding/json"
	"time"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type InstanceMapper struct{}

func NewInstanceMapper() *InstanceMapper {
	return &InstanceMapper{}
}

func (m *InstanceMapper) ToEntity(i *model.Instance) *entity.Instance {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	content := make(map[string]interface{})
	if len(i.Content) > 0 {
		_ = json.Unmarshal(i.Content, &content)
	}

	return &entity.Instance{
		Id:        i.Id,
		Name:      i.Name,
		Type:      i.Type,
		FolderId:  i.FolderId,
		UserId:    i.UserId,
		Content:   content,
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *InstanceMapper) ToModel(i *entity.Instance) *model.Instance {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	var content datatypes.JSON
	if i.Content != nil {
		raw, err := json.Marshal(i.Content)
		if err == nil {
			content = datatypes.JSON(raw)
		}
	}

	return &model.Instance{
		Id:        i.Id,
		Name:      i.Name,
		Type:      i.Type,
		FolderId:  i.FolderId,
		UserId:    i.UserId,
		Content:   content,
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *InstanceMapper) ToEntities(instances []*model.Instance) []*entity.Instance {
	entities := make([]*entity.Instance, len(instances))
	for i, inst := range instances {
		entities[i] = m.ToEntity(inst)
	}
	return entities
}
