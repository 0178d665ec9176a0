package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/apperror"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/internal/repository/memory"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/pkg/ai/parser"
	"study-assistant-be/pkg/cache"
	"study-assistant-be/pkg/events"
	"study-assistant-be/pkg/llm"
	pktNats "study-assistant-be/pkg/nats"

	"github.com/google/uuid"
)

const summaryCacheTTL = 5 * time.Minute

type ISummaryService interface {
	GetAllByFolder(ctx context.Context, userId, folderId uuid.UUID) ([]*dto.ShowSummaryResponse, error)
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateSummariesRequest) (*dto.GenerateSummariesResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type summaryService struct {
	uowFactory     unitofwork.RepositoryFactory
	provider       llm.Provider
	guard          *memory.GenerationGuard
	cache          *cache.Client
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewSummaryService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.Provider,
	guard *memory.GenerationGuard,
	cacheClient *cache.Client,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ISummaryService {
	return &summaryService{
		uowFactory:     uowFactory,
		provider:       provider,
		guard:          guard,
		cache:          cacheClient,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// Cached lists are owner-filtered views, so the key must carry the user id
// as well as the folder id or one user's view would be served to another.
func summaryCacheKey(userId, folderId uuid.UUID) string {
	return "summaries:" + userId.String() + ":" + folderId.String()
}

// GetAllByFolder lists a folder's summaries, upgrading legacy records on the
// way out. The upgrade is read-time only; stored rows are left as written.
func (s *summaryService) GetAllByFolder(ctx context.Context, userId, folderId uuid.UUID) ([]*dto.ShowSummaryResponse, error) {
	var cached []*dto.ShowSummaryResponse
	if s.cache.GetJSON(ctx, summaryCacheKey(userId, folderId), &cached) {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	summaries, err := uow.SummaryRepository().FindAll(ctx,
		specification.ByFolderID{FolderID: folderId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowSummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		result = append(result, toSummaryResponse(sum))
	}

	s.cache.SetJSON(ctx, summaryCacheKey(userId, folderId), result, summaryCacheTTL)
	return result, nil
}

func toSummaryResponse(sum *entity.Summary) *dto.ShowSummaryResponse {
	chapters := parser.UpgradeLegacyChapters(sum.Chapters)
	if chapters == nil {
		chapters = []entity.Chapter{}
	}
	return &dto.ShowSummaryResponse{
		Id:        sum.Id,
		Title:     sum.Title,
		FolderId:  sum.FolderId,
		FileId:    sum.FileId,
		Chapters:  chapters,
		CreatedAt: sum.CreatedAt,
	}
}

// Generate summarizes every folder file that has no summary yet. Each file is
// persisted as soon as its summary parses, so a failure midway keeps the
// completed work. Concurrent runs are blocked per folder in-process and by
// the unique file_id index across processes.
func (s *summaryService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateSummariesRequest) (*dto.GenerateSummariesResponse, error) {
	if !s.guard.TryAcquire(req.FolderId) {
		return nil, apperror.BadRequest("summary generation already in progress for this folder")
	}
	defer s.guard.Release(req.FolderId)

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

	files, err := uow.FileRepository().FindAll(ctx, specification.ByFolderID{FolderID: req.FolderId})
	if err != nil {
		return nil, err
	}

	existing, err := uow.SummaryRepository().FindAll(ctx, specification.ByFolderID{FolderID: req.FolderId})
	if err != nil {
		return nil, err
	}

	summarized := make(map[uuid.UUID]bool, len(existing))
	for _, sum := range existing {
		summarized[sum.FileId] = true
	}

	var pending []*entity.File
	for _, f := range files {
		if !summarized[f.Id] {
			pending = append(pending, f)
		}
	}

	if len(pending) == 0 {
		result := make([]*dto.ShowSummaryResponse, 0, len(existing))
		for _, sum := range existing {
			result = append(result, toSummaryResponse(sum))
		}
		return &dto.GenerateSummariesResponse{
			Message:   "No new files to summarize",
			Summaries: result,
		}, nil
	}

	created := make([]*dto.ShowSummaryResponse, 0, len(pending))
	for _, file := range pending {
		summary, err := s.generateForFile(ctx, uow, userId, file)
		if err != nil {
			if errors.Is(err, contract.ErrDuplicateSummary) {
				s.log.Info("summary", "summary already exists, skipping", map[string]interface{}{
					"file_id": file.Id.String(),
				})
				continue
			}
			s.log.Error("summary", "generation failed for file", map[string]interface{}{
				"file_id": file.Id.String(),
				"error":   err.Error(),
			})
			continue
		}
		created = append(created, toSummaryResponse(summary))

		if err := s.eventPublisher.Publish(ctx, events.NewSummaryGeneratedEvent(summary.Id.String(), file.Id.String(), req.FolderId.String(), userId.String())); err != nil {
			s.log.Warn("summary", "failed to publish summary generated event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.cache.Delete(ctx, summaryCacheKey(userId, req.FolderId))

	return &dto.GenerateSummariesResponse{Summaries: created}, nil
}

func (s *summaryService) generateForFile(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, file *entity.File) (*entity.Summary, error) {
	resp, err := s.provider.GenerateContent(ctx, &llm.Request{
		Parts: []llm.Part{
			{FileURI: file.URL, FileMIME: file.MimeType},
			{Text: constant.SummaryPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	chapters := parser.ParseChapters(resp)
	if len(chapters) == 0 {
		return nil, fmt.Errorf("model returned empty summary")
	}

	title := file.Name
	if chapters[0].Title != "" {
		title = chapters[0].Title
	}

	summary := &entity.Summary{
		Id:        uuid.New(),
		Title:     title,
		FolderId:  file.FolderId,
		FileId:    file.Id,
		UserId:    userId,
		Chapters:  chapters,
		CreatedAt: time.Now(),
	}

	if err := uow.SummaryRepository().Create(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *summaryService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	summary, err := uow.SummaryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if summary == nil {
		return apperror.NotFound("summary not found")
	}

	if err := uow.SummaryRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(ctx, summaryCacheKey(userId, summary.FolderId))
	return nil
}
