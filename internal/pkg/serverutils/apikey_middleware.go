package serverutils

import (
	"crypto/subtle"

	"chat-storage-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ApiKeyMiddleware rejects non-public requests whose X-API-KEY header does
// not match the configured secret. An empty secret disables the check: the
// filter fails open, which is a documented deployment risk rather than a
// silent default.
func ApiKeyMiddleware(apiKey string, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		path := ctx.Path()
		if isPublicPath(path) {
			return ctx.Next()
		}

		if apiKey == "" {
			return ctx.Next()
		}

		provided := ctx.Get("X-API-KEY")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			log.Warn("auth", "invalid API key", map[string]interface{}{
				"path": path,
			})
			return ctx.Status(fiber.StatusUnauthorized).SendString("Invalid API Key")
		}

		return ctx.Next()
	}
}
