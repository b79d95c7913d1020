package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-tailor/internal/models"
)

type HealthHandler struct {
	geminiConfigured bool
	openAIConfigured bool
	s3Configured     bool
	now              func() time.Time
}

func NewHealthHandler(geminiConfigured, openAIConfigured, s3Configured bool) *HealthHandler {
	return &HealthHandler{
		geminiConfigured: geminiConfigured,
		openAIConfigured: openAIConfigured,
		s3Configured:     s3Configured,
		now:              time.Now,
	}
}

// HandleHealth reports configuration only; it never contacts the generators or S3.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now(),
		Services: map[string]string{
			"gemini_api": configuredStatus(h.geminiConfigured),
			"openai_api": configuredStatus(h.openAIConfigured),
			"s3":         configuredStatus(h.s3Configured),
		},
	})
}

func configuredStatus(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}
