package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GEMINI_API_KEY", "OPENAI_API_KEY", "S3_BUCKET_NAME", "AWS_ACCESS_KEY_ID",
		"AWS_SECRET_ACCESS_KEY", "OUTPUT_DIR", "OUTPUT_TTL", "SCORE_KEYWORD_WEIGHT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Storage.OutputPath != "./downloads" {
		t.Errorf("OutputPath = %q, want ./downloads", cfg.Storage.OutputPath)
	}
	if cfg.Storage.OutputTTL != 24*time.Hour {
		t.Errorf("OutputTTL = %v, want 24h", cfg.Storage.OutputTTL)
	}
	if cfg.Scoring.KeywordWeight != 70 || cfg.Scoring.FormatBonus != 20 || cfg.Scoring.CompletenessBonus != 10 {
		t.Errorf("unexpected scoring defaults: %+v", cfg.Scoring)
	}
	if cfg.Scoring.MaxMissing != 10 {
		t.Errorf("MaxMissing = %d, want 10", cfg.Scoring.MaxMissing)
	}
	if cfg.GeminiConfigured() {
		t.Error("GeminiConfigured() = true without an API key")
	}
	if cfg.S3Configured() {
		t.Error("S3Configured() = true without a bucket")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("S3_BUCKET_NAME", "bucket")
	t.Setenv("AWS_ACCESS_KEY_ID", "access")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("OUTPUT_TTL", "0")
	t.Setenv("SCORE_KEYWORD_WEIGHT", "60.5")
	t.Setenv("GEMINI_TEMPERATURE", "not-a-number")

	cfg := Load()

	if !cfg.GeminiConfigured() {
		t.Error("GeminiConfigured() = false with an API key")
	}
	if !cfg.S3Configured() {
		t.Error("S3Configured() = false with bucket and credentials")
	}
	if cfg.Storage.OutputTTL != 0 {
		t.Errorf("OutputTTL = %v, want 0", cfg.Storage.OutputTTL)
	}
	if cfg.Scoring.KeywordWeight != 60.5 {
		t.Errorf("KeywordWeight = %v, want 60.5", cfg.Scoring.KeywordWeight)
	}
	if cfg.Gemini.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want fallback 0.7", cfg.Gemini.Temperature)
	}
}

func TestS3Configured_RequiresCredentials(t *testing.T) {
	cfg := &Config{S3: S3Config{Bucket: "bucket"}}
	if cfg.S3Configured() {
		t.Error("S3Configured() = true with bucket but no credentials")
	}
}

func TestOpenAIConfigured(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		expect bool
	}{
		{name: "No keys", cfg: Config{}, expect: false},
		{name: "OpenAI only", cfg: Config{OpenAI: OpenAIConfig{APIKey: "sk"}}, expect: true},
		{name: "Gemini preferred", cfg: Config{Gemini: GeminiConfig{APIKey: "g"}, OpenAI: OpenAIConfig{APIKey: "sk"}}, expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.OpenAIConfigured(); got != tt.expect {
				t.Errorf("OpenAIConfigured() = %v, want %v", got, tt.expect)
			}
		})
	}
}
