package mapper

import (
	"encoding/json"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type SummaryMapper struct{}

func NewSummaryMapper() *SummaryMapper {
	return &SummaryMapper{}
}

func (m *SummaryMapper) ToEntity(s *model.Summary) *entity.Summary {
	if s == nil {
		return nil
	}

	var chapters []entity.Chapter
	if len(s.Chapters) > 0 {
		_ = json.Unmarshal(s.Chapters, &chapters)
	}

	return &entity.Summary{
		Id:        s.Id,
		Title:     s.Title,
		FolderId:  s.FolderId,
		FileId:    s.FileId,
		UserId:    s.UserId,
		Chapters:  chapters,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SummaryMapper) ToModel(s *entity.Summary) *model.Summary {
	if s == nil {
		return nil
	}

	chapters := s.Chapters
	if chapters == nil {
		chapters = []entity.Chapter{}
	}
	rawChapters, _ := json.Marshal(chapters)

	return &model.Summary{
		Id:        s.Id,
		Title:     s.Title,
		FolderId:  s.FolderId,
		FileId:    s.FileId,
		UserId:    s.UserId,
		Chapters:  datatypes.JSON(rawChapters),
		CreatedAt: s.CreatedAt,
	}
}

func (m *SummaryMapper) ToEntities(summaries []*model.Summary) []*entity.Summary {
	entities := make([]*entity.Summary, len(summaries))
	for i, s := range summaries {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
