package mapper

import (
	"encoding/json"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToEntity(q *model.Quiz) *entity.Quiz {
	if q == nil {
		return nil
	}

	var fileIds []uuid.UUID
	if len(q.FileIds) > 0 {
		_ = json.Unmarshal(q.FileIds, &fileIds)
	}

	var questions []entity.Question
	if len(q.Questions) > 0 {
		_ = json.Unmarshal(q.Questions, &questions)
	}

	return &entity.Quiz{
		Id:         q.Id,
		Title:      q.Title,
		FolderId:   q.FolderId,
		InstanceId: q.InstanceId,
		FileId:     q.FileId,
		FileIds:    fileIds,
		UserId:     q.UserId,
		Questions:  questions,
		CreatedAt:  q.CreatedAt,
	}
}

func (m *QuizMapper) ToModel(q *entity.Quiz) *model.Quiz {
	if q == nil {
		return nil
	}

	var fileIds datatypes.JSON
	if len(q.FileIds) > 0 {
		raw, err := json.Marshal(q.FileIds)
		if err == nil {
			fileIds = datatypes.JSON(raw)
		}
	}

	questions := q.Questions
	if questions == nil {
		questions = []entity.Question{}
	}
	rawQuestions, _ := json.Marshal(questions)

	return &model.Quiz{
		Id:         q.Id,
		Title:      q.Title,
		FolderId:   q.FolderId,
		InstanceId: q.InstanceId,
		FileId:     q.FileId,
		FileIds:    fileIds,
		UserId:     q.UserId,
		Questions:  datatypes.JSON(rawQuestions),
		CreatedAt:  q.CreatedAt,
	}
}

func (m *QuizMapper) ToEntities(quizzes []*model.Quiz) []*entity.Quiz {
	entities := make([]*entity.Quiz, len(quizzes))
	for i, q := range quizzes {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
