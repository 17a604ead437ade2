package serverutils

import (
	"time"

	"chat-storage-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLoggerMiddleware tags every request with an id and logs
// method/path/status/latency once the handler chain returns.
func RequestLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestId := uuid.NewString()
		ctx.Locals("request_id", requestId)

		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		log.Info("http", "request completed", map[string]interface{}{
			"request_id": requestId,
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         ctx.IP(),
		})

		return err
	}
}
