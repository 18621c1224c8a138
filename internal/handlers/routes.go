package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const Version = "1.0.0"

func RegisterRoutes(app *fiber.App, analysisHandler *AnalysisHandler) {
	app.Post("/resume_enhance", analysisHandler.HandleResumeEnhance)
	app.Post("/compare", analysisHandler.HandleCompare)

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": Version,
			"endpoints": []string{
				"POST /resume_enhance",
				"POST /compare",
				"GET /api/v1/health",
			},
		})
	})
}
