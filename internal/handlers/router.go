package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-tailor/internal/models"
)

// HeaderDegradedSteps lists the best-effort steps that fell back during an analysis.
const HeaderDegradedSteps = "X-Degraded-Steps"

func RegisterRoutes(app *fiber.App, analyze *AnalyzeHandler, download *DownloadHandler, health *HealthHandler) {
	api := app.Group("/api")

	api.Get("/health", health.HandleHealth)
	api.Post("/analyze", analyze.HandleAnalyze)
	api.Get("/download/:filename", download.HandleDownload)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Tailor API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/analyze",
				"GET /api/download/:filename",
				"GET /api/health",
			},
		})
	})
}

// ErrorHandler renders every error as {"detail": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Detail: err.Error(),
	})
}
