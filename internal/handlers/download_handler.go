package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-tailor/internal/services"
)

type DownloadHandler struct {
	storage services.StorageService
}

func NewDownloadHandler(storage services.StorageService) *DownloadHandler {
	return &DownloadHandler{
		storage: storage,
	}
}

// HandleDownload handles GET /api/download/:filename
func (h *DownloadHandler) HandleDownload(c *fiber.Ctx) error {
	filename := c.Params("filename")

	f, info, err := h.storage.OpenFile(filename)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "File not found")
		}
		return err
	}

	// Content-Type comes from the extension, octet-stream when unknown.
	c.Attachment(filename)
	return c.SendStream(f, int(info.Size()))
}
