package presenters

import (
	"Food-Recipe-Service/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	// ErrorCode marks failures caused by the request itself.
	ErrorCode = "1000"
	// TechnicalErrorCode marks unexpected internal failures.
	TechnicalErrorCode = "2000"
)

func SuccessResponse(c *fiber.Ctx, data any, status int) error {
	if data == nil {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(domain.Error{
		Code:    ErrorCode,
		Message: message,
	})
}

// TechnicalErrorResponse hides internals behind an opaque server error.
func TechnicalErrorResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(domain.Error{
		Code:    TechnicalErrorCode,
		Message: "Unexpected technical error occurred",
	})
}
