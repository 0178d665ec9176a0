package bootstrap

import (
	"context"
	"log"

	"study-assistant-be/internal/config"
	"study-assistant-be/internal/controller"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/repository/memory"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/internal/service"
	"study-assistant-be/pkg/cache"
	"study-assistant-be/pkg/llm/gemini"
	pktNats "study-assistant-be/pkg/nats"
	"study-assistant-be/pkg/storage"

	"gorm.io/gorm"
)

type Container struct {
	AuthController     controller.IAuthController
	FolderController   controller.IFolderController
	InstanceController controller.IInstanceController
	FileController     controller.IFileController
	QuizController     controller.IQuizController
	SummaryController  controller.ISummaryController
	ChatController     controller.IChatController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	ctx := context.Background()

	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Infrastructure. NATS and redis degrade to nil-safe no-ops so a missing
	// broker or cache never blocks startup.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	redisCache, err := cache.NewClient(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v", err)
	} else if err := redisCache.Ping(ctx); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	objectStore, err := storage.NewMinioStore(ctx, storage.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Secure:    cfg.Storage.Secure,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}

	// Two Gemini handles: a fast model for chat turns, a stronger one for quiz
	// and summary generation.
	chatProvider, err := gemini.NewProvider(ctx, cfg.Keys.GoogleGemini, cfg.Ai.ChatModel)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize chat LLM provider: %v", err)
	}
	generationProvider, err := gemini.NewProvider(ctx, cfg.Keys.GoogleGemini, cfg.Ai.GenerationModel)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize generation LLM provider: %v", err)
	}

	summaryGuard := memory.NewGenerationGuard()

	// Services
	authService := service.NewAuthService(uowFactory, natsPub, sysLogger)
	folderService := service.NewFolderService(uowFactory)
	instanceService := service.NewInstanceService(uowFactory)
	fileService := service.NewFileService(uowFactory, objectStore, natsPub, sysLogger)
	quizService := service.NewQuizService(uowFactory, generationProvider, natsPub, sysLogger)
	summaryService := service.NewSummaryService(uowFactory, generationProvider, summaryGuard, redisCache, natsPub, sysLogger)
	chatService := service.NewChatService(uowFactory, chatProvider, objectStore, cfg, sysLogger)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		FolderController:   controller.NewFolderController(folderService),
		InstanceController: controller.NewInstanceController(instanceService),
		FileController:     controller.NewFileController(fileService),
		QuizController:     controller.NewQuizController(quizService),
		SummaryController:  controller.NewSummaryController(summaryService),
		ChatController:     controller.NewChatController(chatService),
	}
}
