package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

const quizJSON = `{"questions": [
	{"id": 1, "question": "Q1?", "options": [{"id": 1, "text": "a"}, {"id": 2, "text": "b"}, {"id": 3, "text": "c"}, {"id": 4, "text": "d"}], "correctAnswer": 1},
	{"id": 2, "question": "Q2?", "options": [{"id": 1, "text": "a"}, {"id": 2, "text": "b"}, {"id": 3, "text": "c"}, {"id": 4, "text": "d"}], "correctAnswer": 2}
]}`

func seedFolderWithFiles(factory *fakeFactory, userId uuid.UUID, fileCount int) (uuid.UUID, []uuid.UUID) {
	folderId := uuid.New()
	factory.store.folders = append(factory.store.folders, &entity.Folder{
		Id:        folderId,
		Name:      "Biology",
		UserId:    userId,
		CreatedAt: time.Now(),
	})

	fileIds := make([]uuid.UUID, 0, fileCount)
	for i := 0; i < fileCount; i++ {
		id := uuid.New()
		factory.store.files = append(factory.store.files, &entity.File{
			Id:       id,
			Name:     "doc.pdf",
			URL:      "http://store.local/doc.pdf",
			MimeType: "application/pdf",
			FolderId: folderId,
			UserId:   userId,
		})
		fileIds = append(fileIds, id)
	}
	return folderId, fileIds
}

func TestGenerateQuizCombinesFiles(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, fileIds := seedFolderWithFiles(factory, userId, 2)

	provider := &fakeProvider{responses: []string{quizJSON, quizJSON}}
	svc := NewQuizService(factory, provider, nil, nopLogger{})

	resp, err := svc.Generate(context.Background(), userId, &dto.GenerateQuizRequest{
		FolderId: folderId,
		FileIds:  fileIds,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.Title != "Quiz on 2 Documents" {
		t.Errorf("Title = %q, want %q", resp.Title, "Quiz on 2 Documents")
	}
	for _, outcome := range resp.Outcomes {
		if !outcome.Success {
			t.Errorf("file %s marked failed: %s", outcome.FileId, outcome.Error)
		}
	}

	quiz := factory.store.quizzes[0]
	if len(quiz.Questions) != 4 {
		t.Fatalf("got %d questions, want 4", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.Id != i+1 {
			t.Errorf("question %d id = %d, want sequential numbering", i, q.Id)
		}
	}
	if quiz.Questions[0].SourceFileId != fileIds[0].String() {
		t.Errorf("first question source = %q, want %s", quiz.Questions[0].SourceFileId, fileIds[0])
	}
	if quiz.Questions[2].SourceFileId != fileIds[1].String() {
		t.Errorf("third question source = %q, want %s", quiz.Questions[2].SourceFileId, fileIds[1])
	}
	if quiz.FileId != fileIds[0] {
		t.Errorf("quiz FileId = %s, want first file %s", quiz.FileId, fileIds[0])
	}
}

func TestGenerateQuizPartialFailure(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, fileIds := seedFolderWithFiles(factory, userId, 2)

	provider := &fakeProvider{
		responses: []string{quizJSON, ""},
		errs:      []error{nil, errors.New("model unavailable")},
	}
	svc := NewQuizService(factory, provider, nil, nopLogger{})

	resp, err := svc.Generate(context.Background(), userId, &dto.GenerateQuizRequest{
		FolderId: folderId,
		FileIds:  fileIds,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !resp.Outcomes[0].Success {
		t.Error("first file should succeed")
	}
	if resp.Outcomes[1].Success {
		t.Error("second file should fail")
	}
	if resp.Outcomes[1].Error == "" {
		t.Error("failed outcome should carry an error message")
	}

	if len(factory.store.quizzes) != 1 {
		t.Fatal("quiz should still be created on partial failure")
	}
	if len(factory.store.quizzes[0].Questions) != 2 {
		t.Errorf("got %d questions, want 2 from the surviving file", len(factory.store.quizzes[0].Questions))
	}
}

func TestGenerateQuizAllFilesFailStillCreatesQuiz(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, fileIds := seedFolderWithFiles(factory, userId, 1)

	provider := &fakeProvider{errs: []error{errors.New("boom")}}
	svc := NewQuizService(factory, provider, nil, nopLogger{})

	resp, err := svc.Generate(context.Background(), userId, &dto.GenerateQuizRequest{
		FolderId: folderId,
		FileIds:  fileIds,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(factory.store.quizzes) != 1 {
		t.Fatal("quiz record should exist even with zero questions")
	}
	if len(factory.store.quizzes[0].Questions) != 0 {
		t.Errorf("got %d questions, want 0", len(factory.store.quizzes[0].Questions))
	}
	if resp.Outcomes[0].Success {
		t.Error("outcome should be a failure")
	}
}

func TestGenerateQuizUnknownFileReported(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, fileIds := seedFolderWithFiles(factory, userId, 1)
	ghost := uuid.New()

	provider := &fakeProvider{responses: []string{quizJSON}}
	svc := NewQuizService(factory, provider, nil, nopLogger{})

	resp, err := svc.Generate(context.Background(), userId, &dto.GenerateQuizRequest{
		FolderId: folderId,
		FileIds:  append(fileIds, ghost),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(resp.Outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(resp.Outcomes))
	}
	if resp.Outcomes[1].Success || resp.Outcomes[1].Error != "file not found" {
		t.Errorf("ghost file outcome = %+v, want file not found failure", resp.Outcomes[1])
	}
	// Title counts resolved files, not requested ids.
	if resp.Title != "Quiz on 1 Document" {
		t.Errorf("Title = %q, want %q", resp.Title, "Quiz on 1 Document")
	}
}

func TestGenerateQuizNoFilesFound(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, _ := seedFolderWithFiles(factory, userId, 0)

	svc := NewQuizService(factory, &fakeProvider{}, nil, nopLogger{})

	_, err := svc.Generate(context.Background(), userId, &dto.GenerateQuizRequest{
		FolderId: folderId,
		FileIds:  []uuid.UUID{uuid.New()},
	})

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindNotFound {
		t.Errorf("err = %v, want not-found app error", err)
	}
}

func TestGenerateQuizForeignFolderRejected(t *testing.T) {
	factory := newFakeFactory()
	owner := uuid.New()
	folderId, fileIds := seedFolderWithFiles(factory, owner, 1)

	svc := NewQuizService(factory, &fakeProvider{}, nil, nopLogger{})

	_, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateQuizRequest{
		FolderId: folderId,
		FileIds:  fileIds,
	})

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindNotFound {
		t.Errorf("err = %v, want not-found app error for foreign folder", err)
	}
}

func TestGenerateQuizLinkedToInstance(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, fileIds := seedFolderWithFiles(factory, userId, 1)
	instanceId := uuid.New()

	provider := &fakeProvider{responses: []string{quizJSON}}
	svc := NewQuizService(factory, provider, nil, nopLogger{})

	if _, err := svc.Generate(context.Background(), userId, &dto.GenerateQuizRequest{
		FolderId:   folderId,
		InstanceId: &instanceId,
		FileIds:    fileIds,
	}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	byInstance, err := svc.GetAll(context.Background(), userId, nil, &instanceId)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(byInstance) != 1 {
		t.Fatalf("got %d quizzes for instance, want 1", len(byInstance))
	}
	if byInstance[0].InstanceId == nil || *byInstance[0].InstanceId != instanceId {
		t.Error("quiz should carry its instance link")
	}

	other := uuid.New()
	none, err := svc.GetAll(context.Background(), userId, nil, &other)
	if err != nil {
		t.Fatalf("GetAll() other instance error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d quizzes for unrelated instance, want 0", len(none))
	}
}

func TestShowQuizScopedToOwner(t *testing.T) {
	factory := newFakeFactory()
	owner := uuid.New()
	quizId := uuid.New()
	factory.store.quizzes = append(factory.store.quizzes, &entity.Quiz{
		Id:     quizId,
		Title:  "Quiz on 1 Document",
		UserId: owner,
	})

	svc := NewQuizService(factory, &fakeProvider{}, nil, nopLogger{})

	if _, err := svc.Show(context.Background(), owner, quizId); err != nil {
		t.Errorf("owner Show() error = %v", err)
	}

	_, err := svc.Show(context.Background(), uuid.New(), quizId)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindNotFound {
		t.Errorf("stranger Show() err = %v, want not found", err)
	}
}
