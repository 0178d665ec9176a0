package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"study-assistant-be/internal/config"
	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/apperror"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/pkg/llm"
	"study-assistant-be/pkg/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetMessages(ctx context.Context, userId, instanceId uuid.UUID) ([]*dto.ShowMessageResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.Provider
	store      storage.ObjectStore
	cfg        *config.Config
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.Provider,
	store storage.ObjectStore,
	cfg *config.Config,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		provider:   provider,
		store:      store,
		cfg:        cfg,
		log:        log,
	}
}

// extensionMIME maps well-known attachment extensions. Anything else is
// sniffed from the bytes, falling back to octet-stream.
var extensionMIME = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

func attachmentMIME(name string, data []byte) string {
	if mime, ok := extensionMIME[strings.ToLower(filepath.Ext(name))]; ok {
		return mime
	}
	if detected := mimetype.Detect(data); detected != nil {
		return detected.String()
	}
	return "application/octet-stream"
}

func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.InstanceRepository().FindOne(ctx,
		specification.ByID{ID: req.InstanceId},
		specification.UserOwnedBy{UserID: userId},
		specification.ByType{Type: constant.InstanceTypeChat},
	)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, apperror.NotFound("chat instance not found")
	}

	history, err := uow.InstanceMessageRepository().FindAll(ctx,
		specification.ByInstanceID{InstanceID: req.InstanceId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	llmReq, err := s.buildRequest(ctx, uow, instance.FolderId, history, req)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.Ai.ChatTimeout)
	defer cancel()

	reply, err := s.provider.GenerateContent(genCtx, llmReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.Timeout("model response timed out")
		}
		return nil, apperror.Upstream("model request failed", err)
	}

	userText := req.Message
	if userText == "" && req.Attachment != nil {
		userText = constant.DefaultAttachmentPrompt
	}

	userMsg := entity.InstanceMessage{
		Id:         uuid.New(),
		InstanceId: req.InstanceId,
		Role:       constant.RoleUser,
		Content:    userText,
		CreatedAt:  time.Now(),
	}
	if req.Attachment != nil {
		userMsg.Attachments = []entity.Attachment{*req.Attachment}
	}

	assistantMsg := entity.InstanceMessage{
		Id:         uuid.New(),
		InstanceId: req.InstanceId,
		Role:       constant.RoleAssistant,
		Content:    reply,
		CreatedAt:  time.Now(),
	}

	// Both turns and the instance snapshot commit together. A crash between
	// the model call and here loses the exchange, never half of it.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.InstanceMessageRepository().Create(ctx, &userMsg); err != nil {
		return nil, err
	}
	if err := uow.InstanceMessageRepository().Create(ctx, &assistantMsg); err != nil {
		return nil, err
	}

	now := time.Now()
	instance.Content = map[string]interface{}{
		"lastMessage":  reply,
		"messageCount": len(history) + 2,
	}
	instance.UpdatedAt = &now
	if err := uow.InstanceRepository().Update(ctx, instance); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		Reply:     reply,
		MessageId: assistantMsg.Id,
	}, nil
}

func (s *chatService) buildRequest(ctx context.Context, uow unitofwork.UnitOfWork, folderId uuid.UUID, history []*entity.InstanceMessage, req *dto.SendMessageRequest) (*llm.Request, error) {
	llmReq := &llm.Request{
		System: constant.InitialChatContext,
	}

	for _, msg := range history {
		llmReq.History = append(llmReq.History, llm.Message{
			Role: msg.Role,
			Text: msg.Content,
		})
	}

	// The folder's documents ride along on every turn so the model can
	// ground its answers.
	files, err := uow.FileRepository().FindAll(ctx, specification.ByFolderID{FolderID: folderId})
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		llmReq.Parts = append(llmReq.Parts, llm.Part{
			FileURI:  f.URL,
			FileMIME: f.MimeType,
		})
	}

	if req.Attachment != nil {
		data, err := s.store.Fetch(ctx, req.Attachment.URL)
		if err != nil {
			return nil, apperror.Upstream("failed to fetch attachment", err)
		}
		llmReq.Parts = append(llmReq.Parts, llm.Part{
			InlineData: data,
			InlineMIME: attachmentMIME(req.Attachment.Name, data),
		})
	}

	text := req.Message
	if text == "" && req.Attachment != nil {
		text = constant.DefaultAttachmentPrompt
	}
	llmReq.Parts = append(llmReq.Parts, llm.Part{Text: text})

	return llmReq, nil
}

func (s *chatService) GetMessages(ctx context.Context, userId, instanceId uuid.UUID) ([]*dto.ShowMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.InstanceRepository().FindOne(ctx,
		specification.ByID{ID: instanceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, apperror.NotFound("instance not found")
	}

	messages, err := uow.InstanceMessageRepository().FindAll(ctx,
		specification.ByInstanceID{InstanceID: instanceId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowMessageResponse, 0, len(messages))
	for _, msg := range messages {
		result = append(result, &dto.ShowMessageResponse{
			Id:          msg.Id,
			Role:        msg.Role,
			Content:     msg.Content,
			Attachments: msg.Attachments,
			CreatedAt:   msg.CreatedAt,
		})
	}
	return result, nil
}
