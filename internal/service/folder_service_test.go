package service

import (
	"context"
	"errors"
	"testing"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

func TestDeleteFolderCascade(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, fileIds := seedFolderWithFiles(factory, userId, 1)

	instanceId := uuid.New()
	factory.store.instances = append(factory.store.instances, &entity.Instance{
		Id:       instanceId,
		Type:     constant.InstanceTypeChat,
		FolderId: folderId,
		UserId:   userId,
	})
	factory.store.messages = append(factory.store.messages,
		&entity.InstanceMessage{Id: uuid.New(), InstanceId: instanceId, Role: constant.RoleUser, Content: "hi"},
		&entity.InstanceMessage{Id: uuid.New(), InstanceId: instanceId, Role: constant.RoleAssistant, Content: "hello"},
	)
	factory.store.quizzes = append(factory.store.quizzes, &entity.Quiz{
		Id: uuid.New(), FolderId: folderId, UserId: userId,
	})
	factory.store.summaries = append(factory.store.summaries, &entity.Summary{
		Id: uuid.New(), FolderId: folderId, FileId: fileIds[0], UserId: userId,
	})

	svc := NewFolderService(factory)

	if err := svc.Delete(context.Background(), userId, folderId); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if len(factory.store.folders) != 0 {
		t.Error("folder should be gone")
	}
	if len(factory.store.instances) != 0 {
		t.Error("instances should be gone")
	}
	if len(factory.store.messages) != 0 {
		t.Error("instance messages should be gone")
	}

	// Uploaded material survives the folder.
	if len(factory.store.files) != 1 {
		t.Error("files should survive folder deletion")
	}
	if len(factory.store.quizzes) != 1 {
		t.Error("quizzes should survive folder deletion")
	}
	if len(factory.store.summaries) != 1 {
		t.Error("summaries should survive folder deletion")
	}
}

func TestDeleteFolderForeignOwnerRejected(t *testing.T) {
	factory := newFakeFactory()
	owner := uuid.New()
	folderId, _ := seedFolderWithFiles(factory, owner, 0)

	svc := NewFolderService(factory)

	err := svc.Delete(context.Background(), uuid.New(), folderId)

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindNotFound {
		t.Errorf("err = %v, want not found for foreign folder", err)
	}
	if len(factory.store.folders) != 1 {
		t.Error("folder must remain for its owner")
	}
}

func TestFolderCreateShowUpdate(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	svc := NewFolderService(factory)

	created, err := svc.Create(context.Background(), userId, &dto.CreateFolderRequest{Name: "Chemistry"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	shown, err := svc.Show(context.Background(), userId, created.Id)
	if err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if shown.Name != "Chemistry" {
		t.Errorf("name = %q", shown.Name)
	}

	if _, err := svc.Update(context.Background(), userId, &dto.UpdateFolderRequest{Id: created.Id, Name: "Organic Chemistry"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	shown, err = svc.Show(context.Background(), userId, created.Id)
	if err != nil {
		t.Fatalf("Show() after update error = %v", err)
	}
	if shown.Name != "Organic Chemistry" {
		t.Errorf("name after update = %q", shown.Name)
	}
	if shown.UpdatedAt == nil {
		t.Error("UpdatedAt should be set after rename")
	}
}

func TestFolderShowScopedToOwner(t *testing.T) {
	factory := newFakeFactory()
	owner := uuid.New()
	folderId, _ := seedFolderWithFiles(factory, owner, 0)

	svc := NewFolderService(factory)

	_, err := svc.Show(context.Background(), uuid.New(), folderId)

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindNotFound {
		t.Errorf("err = %v, want not found for stranger", err)
	}
}
