package bootstrap

import (
	"context"
	"log"
	"time"

	"ironlady-ai-be/internal/config"
	"ironlady-ai-be/internal/controller"
	"ironlady-ai-be/internal/pkg/logger"
	"ironlady-ai-be/internal/repository/contract"
	"ironlady-ai-be/internal/repository/memory"
	"ironlady-ai-be/internal/repository/redisstore"
	"ironlady-ai-be/internal/repository/unitofwork"
	"ironlady-ai-be/internal/service"
	"ironlady-ai-be/pkg/embedding"
	"ironlady-ai-be/pkg/llm/factory"
	"ironlady-ai-be/pkg/rag"
	"ironlady-ai-be/pkg/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	FeedbackController controller.IFeedbackController
	AdminController    controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	feedbackLogger := logger.NewIsolatedLogger(cfg.App.FeedbackLogPath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	apiKey := cfg.Keys.OpenAI
	baseURL := cfg.Ai.LLMBaseURL
	if cfg.Ai.LLMProvider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		baseURL,
		apiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Retrieval Pipeline
	retriever := search.NewVectorRetriever(newChunkSearcher(uowFactory), embeddingProvider)
	engine := rag.NewEngine(retriever, llmProvider, nil)

	// 5. Session Storage
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionStore contract.SessionStore
	if cfg.Session.Store == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionStore = redisstore.NewSessionRepository(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionStore = memory.NewSessionRepository(sessionTTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Keys.FeedbackTopic, pubSub)
	consumerService := service.NewConsumerService(
		cfg.Keys.FeedbackTopic,
		pubSub,
		feedbackLogger,
		sysLogger,
	)

	chatService := service.NewChatService(engine, sessionStore, sysLogger)
	feedbackService := service.NewFeedbackService(uowFactory, publisherService, sysLogger)
	adminService := service.NewAdminService(feedbackService, engine.Metrics(), sysLogger)

	// 7. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService),
		FeedbackController: controller.NewFeedbackController(feedbackService),
		AdminController:    controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}
