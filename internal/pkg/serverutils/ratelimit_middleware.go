package serverutils

import (
	"chat-storage-be/internal/pkg/logger"
	"chat-storage-be/internal/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// RateLimitMiddleware throttles non-public requests per client IP. The
// client identity is the transport-level remote address (ctx.IP with fiber's
// default config); forwarded headers are not trusted. A request that does
// not fit in the window is rejected synchronously, never queued.
func RateLimitMiddleware(limiter *ratelimit.Limiter, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if isPublicPath(ctx.Path()) {
			return ctx.Next()
		}

		client := ctx.IP()
		if !limiter.Allow(client) {
			log.Warn("ratelimit", "window exhausted", map[string]interface{}{
				"client": client,
				"path":   ctx.Path(),
			})
			return ctx.Status(fiber.StatusTooManyRequests).SendString("Too Many Requests")
		}

		return ctx.Next()
	}
}
