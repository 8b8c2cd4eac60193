package helper

import (
	"github.com/gofiber/fiber/v2"
)

// ResponseWrapper is the platform-wide envelope. Every CMS service (student,
// location, payment) answers with this exact shape; statusCode mirrors the
// HTTP status so clients can read one field.
type ResponseWrapper struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
}

// ✅ success response (200)
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, message, data)
}

// ✅ success response (201)
func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusCreated, message, data)
}

func JsonWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(ResponseWrapper{
		Message:    message,
		StatusCode: code,
		Data:       data,
	})
}

// ✅ error response; data is always null on errors
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ResponseWrapper{
		Message:    message,
		StatusCode: code,
		Data:       nil,
	})
}
