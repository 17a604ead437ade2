package bootstrap

import (
	"time"

	"chat-storage-be/internal/config"
	"chat-storage-be/internal/controller"
	"chat-storage-be/internal/pkg/logger"
	"chat-storage-be/internal/pkg/ratelimit"
	"chat-storage-be/internal/repository/unitofwork"
	"chat-storage-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.IChatSessionController
	MessageController controller.IChatMessageController
	HealthController  controller.IHealthController

	// Shared infrastructure
	Logger      logger.ILogger
	RateLimiter *ratelimit.Limiter
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Admission chain state
	limiter := ratelimit.New(cfg.Security.RateLimit, time.Minute)

	// 3. Services
	sessionService := service.NewChatSessionService(uowFactory)
	messageService := service.NewChatMessageService(uowFactory, sessionService)

	// 4. Controllers
	return &Container{
		SessionController: controller.NewChatSessionController(sessionService),
		MessageController: controller.NewChatMessageController(messageService),
		HealthController:  controller.NewHealthController(),
		Logger:            sysLogger,
		RateLimiter:       limiter,
	}
}
