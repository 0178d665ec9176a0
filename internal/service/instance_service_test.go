package service

import (
	"context"
	"testing"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"

	"github.com/google/uuid"
)

func TestCreateInstanceSeedsContent(t *testing.T) {
	cases := []struct {
		instanceType string
		wantKey      string
	}{
		{constant.InstanceTypeChat, "lastMessage"},
		{constant.InstanceTypeQuiz, "questions"},
		{constant.InstanceTypeFlashcard, "cards"},
	}

	for _, tc := range cases {
		t.Run(tc.instanceType, func(t *testing.T) {
			factory := newFakeFactory()
			userId := uuid.New()
			folderId, _ := seedFolderWithFiles(factory, userId, 0)

			svc := NewInstanceService(factory)

			created, err := svc.Create(context.Background(), userId, &dto.CreateInstanceRequest{
				Name:     "workspace",
				Type:     tc.instanceType,
				FolderId: folderId,
			})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			shown, err := svc.Show(context.Background(), userId, created.Id)
			if err != nil {
				t.Fatalf("Show() error = %v", err)
			}
			if _, ok := shown.Content[tc.wantKey]; !ok {
				t.Errorf("content %v missing %q", shown.Content, tc.wantKey)
			}
		})
	}
}

func TestCreateInstanceForeignFolderRejected(t *testing.T) {
	factory := newFakeFactory()
	owner := uuid.New()
	folderId, _ := seedFolderWithFiles(factory, owner, 0)

	svc := NewInstanceService(factory)

	if _, err := svc.Create(context.Background(), uuid.New(), &dto.CreateInstanceRequest{
		Name:     "workspace",
		Type:     constant.InstanceTypeChat,
		FolderId: folderId,
	}); err == nil {
		t.Error("creating in a foreign folder should fail")
	}
}

func TestGetAllInstancesFiltered(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, _ := seedFolderWithFiles(factory, userId, 0)
	otherFolder, _ := seedFolderWithFiles(factory, userId, 0)

	factory.store.instances = append(factory.store.instances,
		&entity.Instance{Id: uuid.New(), Type: constant.InstanceTypeChat, FolderId: folderId, UserId: userId},
		&entity.Instance{Id: uuid.New(), Type: constant.InstanceTypeQuiz, FolderId: folderId, UserId: userId},
		&entity.Instance{Id: uuid.New(), Type: constant.InstanceTypeChat, FolderId: otherFolder, UserId: userId},
	)

	svc := NewInstanceService(factory)

	all, err := svc.GetAll(context.Background(), userId, nil, "")
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d instances, want 3", len(all))
	}

	byFolder, err := svc.GetAll(context.Background(), userId, &folderId, "")
	if err != nil {
		t.Fatalf("GetAll(folder) error = %v", err)
	}
	if len(byFolder) != 2 {
		t.Errorf("got %d instances in folder, want 2", len(byFolder))
	}

	chats, err := svc.GetAll(context.Background(), userId, &folderId, constant.InstanceTypeChat)
	if err != nil {
		t.Fatalf("GetAll(folder, chat) error = %v", err)
	}
	if len(chats) != 1 {
		t.Errorf("got %d chat instances, want 1", len(chats))
	}
}

func TestUpdateInstanceKeepsContentWhenOmitted(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, _ := seedFolderWithFiles(factory, userId, 0)

	instanceId := uuid.New()
	factory.store.instances = append(factory.store.instances, &entity.Instance{
		Id:       instanceId,
		Name:     "old name",
		Type:     constant.InstanceTypeQuiz,
		FolderId: folderId,
		UserId:   userId,
		Content:  map[string]interface{}{"score": 80},
	})

	svc := NewInstanceService(factory)

	if _, err := svc.Update(context.Background(), userId, &dto.UpdateInstanceRequest{
		Id:   instanceId,
		Name: "new name",
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	inst := factory.store.instances[0]
	if inst.Name != "new name" {
		t.Errorf("name = %q", inst.Name)
	}
	if inst.Content["score"] != 80 {
		t.Error("content should be untouched when the request omits it")
	}

	if _, err := svc.Update(context.Background(), userId, &dto.UpdateInstanceRequest{
		Id:      instanceId,
		Name:    "new name",
		Content: map[string]interface{}{"score": 95},
	}); err != nil {
		t.Fatalf("Update() with content error = %v", err)
	}
	if factory.store.instances[0].Content["score"] != 95 {
		t.Error("content should be replaced when the request carries it")
	}
}

func TestDeleteInstanceRemovesMessages(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	folderId, _ := seedFolderWithFiles(factory, userId, 0)

	instanceId := uuid.New()
	factory.store.instances = append(factory.store.instances, &entity.Instance{
		Id:       instanceId,
		Type:     constant.InstanceTypeChat,
		FolderId: folderId,
		UserId:   userId,
	})
	factory.store.messages = append(factory.store.messages,
		&entity.InstanceMessage{Id: uuid.New(), InstanceId: instanceId, Role: constant.RoleUser, Content: "hi"},
	)

	svc := NewInstanceService(factory)

	if err := svc.Delete(context.Background(), userId, instanceId); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(factory.store.instances) != 0 {
		t.Error("instance should be gone")
	}
	if len(factory.store.messages) != 0 {
		t.Error("instance messages should be gone")
	}
}
