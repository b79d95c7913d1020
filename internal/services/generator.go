package services

import (
	"context"

	"alfredoptarigan/resume-tailor/internal/config"
)

// NewTextGenerator picks the rewrite backend: Gemini when its key is set,
// OpenAI otherwise, nil when neither is configured.
func NewTextGenerator(ctx context.Context, cfg *config.Config) (TextGenerator, string, error) {
	switch {
	case cfg.GeminiConfigured():
		generator, err := NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature, cfg.Gemini.MaxOutputTokens)
		return generator, "Gemini AI", err
	case cfg.OpenAIConfigured():
		return NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Temperature, cfg.OpenAI.MaxTokens), "OpenAI", nil
	}
	return nil, "", nil
}
