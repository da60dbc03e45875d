package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// FormatValidationErrors formats validation errors from validator/v10 into
// human-readable messages.
func FormatValidationErrors(err error) []string {
	var messages []string
	if err == nil {
		return messages
	}
	for _, fieldErr := range err.(validator.ValidationErrors) {
		msg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		if fieldErr.Param() != "" {
			msg = fmt.Sprintf("%s (value: %s)", msg, fieldErr.Param())
		}
		messages = append(messages, msg)
	}
	return messages
}

// SanitizeInput trims surrounding whitespace from user-supplied text such as
// generation topics.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
