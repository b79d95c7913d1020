package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-tailor/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /api/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "job_description is required")
	}

	resumeFile, err := c.FormFile("resume_file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "resume_file is required")
	}

	if !services.IsSupportedFile(resumeFile.Filename) {
		return fiber.NewError(fiber.StatusBadRequest, services.ErrUnsupportedFormat.Error())
	}

	if h.maxFileSize > 0 && resumeFile.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := resumeFile.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to read uploaded file")
	}

	result, err := h.analyzer.Analyze(c.UserContext(), services.AnalyzeInput{
		JobDescription: jobDescription,
		Filename:       resumeFile.Filename,
		Data:           data,
	})
	if err != nil {
		return analysisError(err)
	}

	if len(result.Degradations) > 0 {
		steps := make([]string, 0, len(result.Degradations))
		for _, d := range result.Degradations {
			steps = append(steps, d.Step)
		}
		c.Set(HeaderDegradedSteps, strings.Join(steps, ","))
	}

	return c.JSON(result.Response(resumeFile.Filename))
}

func analysisError(err error) error {
	switch {
	case errors.Is(err, services.ErrUnsupportedFormat):
		return fiber.NewError(fiber.StatusBadRequest, services.ErrUnsupportedFormat.Error())
	case errors.Is(err, services.ErrExtraction):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("❌ Analysis failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Analysis failed: %v", err))
	}
}
