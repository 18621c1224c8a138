package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"ampli5/resume-analyzer/internal/services"
)

// StatusForError maps a pipeline error to the HTTP status returned to the caller.
func StatusForError(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation, services.KindExtraction:
		return fiber.StatusBadRequest
	case services.KindRemote:
		if services.IsTimeout(err) {
			return fiber.StatusGatewayTimeout
		}
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := StatusForError(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("❌ [%s] %s %s failed: %v", requestID(c), c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// ErrorHandler renders errors that escape a handler, including *fiber.Error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "-"
}
