package serverutils

import (
	"errors"
	"fmt"

	"chat-storage-be/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorHandler maps errors escaping the handler chain to responses:
// validation failures become 400 with per-field details, fiber errors keep
// their status (404, 405, ...), and anything unanticipated becomes a generic
// 500. Internal detail is logged, never sent to the client.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := make([]FieldError, 0, len(validationErrs))
			for _, fe := range validationErrs {
				details = append(details, FieldError{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				})
			}
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"details": details,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
			})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"request_id": ctx.Locals("request_id"),
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"error":      err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
