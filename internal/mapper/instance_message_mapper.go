package mapper

import (
	"encoding/json"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type InstanceMessageMapper struct{}

func NewInstanceMessageMapper() *InstanceMessageMapper {
	return &InstanceMessageMapper{}
}

func (m *InstanceMessageMapper) ToEntity(msg *model.InstanceMessage) *entity.InstanceMessage {
	if msg == nil {
		return nil
	}

	var attachments []entity.Attachment
	if len(msg.Attachments) > 0 {
		_ = json.Unmarshal(msg.Attachments, &attachments)
	}

	return &entity.InstanceMessage{
		Id:          msg.Id,
		InstanceId:  msg.InstanceId,
		Role:        msg.Role,
		Content:     msg.Content,
		Attachments: attachments,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *InstanceMessageMapper) ToModel(msg *entity.InstanceMessage) *model.InstanceMessage {
	if msg == nil {
		return nil
	}

	var attachments datatypes.JSON
	if len(msg.Attachments) > 0 {
		raw, err := json.Marshal(msg.Attachments)
		if err == nil {
			attachments = datatypes.JSON(raw)
		}
	}

	return &model.InstanceMessage{
		Id:          msg.Id,
		InstanceId:  msg.InstanceId,
		Role:        msg.Role,
		Content:     msg.Content,
		Attachments: attachments,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *InstanceMessageMapper) ToEntities(msgs []*model.InstanceMessage) []*entity.InstanceMessage {
	entities := make([]*entity.InstanceMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
