package server

import (
	"log"

	"chat-storage-be/internal/bootstrap"
	"chat-storage-be/internal/config"
	"chat-storage-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: serverutils.NewErrorHandler(container.Logger),
	})

	// Middleware. Order matters: CORS and logging run for everything,
	// then the admission chain (API key, rate limit) guards the routes.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, X-API-KEY",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
	}))
	app.Use(serverutils.RequestLoggerMiddleware(container.Logger))
	app.Use(serverutils.ApiKeyMiddleware(cfg.Security.ApiKey, container.Logger))
	app.Use(serverutils.RateLimitMiddleware(container.RateLimiter, container.Logger))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.HealthController.RegisterRoutes(app)
	c.SessionController.RegisterRoutes(app)
	c.MessageController.RegisterRoutes(app)
}
