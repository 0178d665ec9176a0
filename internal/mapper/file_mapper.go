package mapper

import (
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/model"
)

type FileMapper struct{}

func NewFileMapper() *FileMapper {
	return &FileMapper{}
}

func (m *FileMapper) ToEntity(f *model.File) *entity.File {
	if f == nil {
		return nil
	}

	return &entity.File{
		Id:        f.Id,
		Name:      f.Name,
		URL:       f.URL,
		MimeType:  f.MimeType,
		Size:      f.Size,
		FolderId:  f.FolderId,
		UserId:    f.UserId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FileMapper) ToModel(f *entity.File) *model.File {
	if f == nil {
		return nil
	}

	return &model.File{
		Id:        f.Id,
		Name:      f.Name,
		URL:       f.URL,
		MimeType:  f.MimeType,
		Size:      f.Size,
		FolderId:  f.FolderId,
		UserId:    f.UserId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FileMapper) ToEntities(files []*model.File) []*entity.File {
	entities := make([]*entity.File, len(files))
	for i, f := range files {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
