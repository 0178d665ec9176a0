package service

import (
	"context"
	"fmt"
	"time"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/apperror"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/pkg/ai/parser"
	"study-assistant-be/pkg/events"
	"study-assistant-be/pkg/llm"
	pktNats "study-assistant-be/pkg/nats"

	"github.com/google/uuid"
)

type IQuizService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID, folderId, instanceId *uuid.UUID) ([]*dto.ShowQuizResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.ShowQuizResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type quizService struct {
	uowFactory     unitofwork.RepositoryFactory
	provider       llm.Provider
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewQuizService(uowFactory unitofwork.RepositoryFactory, provider llm.Provider, eventPublisher *pktNats.Publisher, log logger.ILogger) IQuizService {
	return &quizService{
		uowFactory:     uowFactory,
		provider:       provider,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// Generate builds one combined quiz from the requested files. Each file is
// processed independently: a file whose generation or parsing fails is
// reported in the outcome list but does not abort the run. The quiz record is
// created even when every file fails, so the client always gets an id to poll.
func (s *quizService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.FolderId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("folder not found")
	}

	files, err := uow.FileRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.FileIds},
		specification.ByFolderID{FolderID: req.FolderId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, apperror.NotFound("no files found for quiz generation")
	}

	byId := make(map[uuid.UUID]*entity.File, len(files))
	for _, f := range files {
		byId[f.Id] = f
	}

	var questions []entity.Question
	outcomes := make([]dto.FileOutcome, 0, len(req.FileIds))
	for _, fileId := range req.FileIds {
		file, ok := byId[fileId]
		if !ok {
			outcomes = append(outcomes, dto.FileOutcome{FileId: fileId, Error: "file not found"})
			continue
		}

		generated, err := s.generateForFile(ctx, file)
		if err != nil {
			s.log.Warn("quiz", "generation failed for file", map[string]interface{}{
				"file_id": fileId.String(),
				"error":   err.Error(),
			})
			outcomes = append(outcomes, dto.FileOutcome{FileId: fileId, Error: err.Error()})
			continue
		}

		for i := range generated {
			generated[i].SourceFileId = fileId.String()
		}
		questions = append(questions, generated...)
		outcomes = append(outcomes, dto.FileOutcome{FileId: fileId, Success: true})
	}

	questions = parser.Renumber(questions)

	// The count reflects resolved files; requested ids that matched nothing
	// show up in the outcome list instead.
	plural := "s"
	if len(files) == 1 {
		plural = ""
	}
	title := fmt.Sprintf("Quiz on %d Document%s", len(files), plural)

	quiz := entity.Quiz{
		Id:         uuid.New(),
		Title:      title,
		FolderId:   req.FolderId,
		InstanceId: req.InstanceId,
		FileId:     req.FileIds[0],
		FileIds:    req.FileIds,
		UserId:     userId,
		Questions:  questions,
		CreatedAt:  time.Now(),
	}

	if err := uow.QuizRepository().Create(ctx, &quiz); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewQuizGeneratedEvent(quiz.Id.String(), req.FolderId.String(), userId.String(), len(questions))); err != nil {
		s.log.Warn("quiz", "failed to publish quiz generated event", map[string]interface{}{"error": err.Error()})
	}

	return &dto.GenerateQuizResponse{
		Id:       quiz.Id,
		Title:    quiz.Title,
		Outcomes: outcomes,
	}, nil
}

func (s *quizService) generateForFile(ctx context.Context, file *entity.File) ([]entity.Question, error) {
	resp, err := s.provider.GenerateContent(ctx, &llm.Request{
		Parts: []llm.Part{
			{FileURI: file.URL, FileMIME: file.MimeType},
			{Text: constant.QuizPrompt},
		},
	})
	if err != nil {
		return nil, err
	}

	return parser.ParseQuiz(resp)
}

func (s *quizService) GetAll(ctx context.Context, userId uuid.UUID, folderId, instanceId *uuid.UUID) ([]*dto.ShowQuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if folderId != nil {
		specs = append(specs, specification.ByFolderID{FolderID: *folderId})
	}
	if instanceId != nil {
		specs = append(specs, specification.ByInstanceID{InstanceID: *instanceId})
	}

	quizzes, err := uow.QuizRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowQuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		result = append(result, toQuizResponse(q))
	}
	return result, nil
}

func (s *quizService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.ShowQuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperror.NotFound("quiz not found")
	}

	return toQuizResponse(quiz), nil
}

func (s *quizService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if quiz == nil {
		return apperror.NotFound("quiz not found")
	}

	return uow.QuizRepository().Delete(ctx, id)
}

func toQuizResponse(q *entity.Quiz) *dto.ShowQuizResponse {
	questions := q.Questions
	if questions == nil {
		questions = []entity.Question{}
	}
	return &dto.ShowQuizResponse{
		Id:         q.Id,
		Title:      q.Title,
		FolderId:   q.FolderId,
		InstanceId: q.InstanceId,
		FileIds:    q.FileIds,
		Questions:  questions,
		CreatedAt:  q.CreatedAt,
	}
}
