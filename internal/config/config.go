package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	S3      S3Config
	Storage StorageConfig
	Scoring ScoringConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// OpenAIConfig is the fallback rewrite backend, used only when no Gemini key is set.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int64
}

type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Endpoint        string
}

type StorageConfig struct {
	OutputPath    string
	MaxFileSize   int64
	OutputTTL     time.Duration
	SweepInterval time.Duration
}

// ScoringConfig holds the ATS score policy. The keyword weight scales the
// matched/total ratio; the two bonuses are added flat.
type ScoringConfig struct {
	KeywordWeight     float64
	FormatBonus       float64
	CompletenessBonus float64
	MaxMissing        int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			Env:          getEnv("ENV", "development"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "120s"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:     float32(getEnvAsFloat("GEMINI_TEMPERATURE", 0.7)),
			MaxOutputTokens: int32(getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 8192)),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat("OPENAI_TEMPERATURE", 0.7),
			MaxTokens:   getEnvAsInt64("OPENAI_MAX_TOKENS", 4000),
		},
		S3: S3Config{
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Region:          getEnv("AWS_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET_NAME", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
		},
		Storage: StorageConfig{
			OutputPath:    getEnv("OUTPUT_DIR", "./downloads"),
			MaxFileSize:   getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			OutputTTL:     getEnvAsDuration("OUTPUT_TTL", "24h"),
			SweepInterval: getEnvAsDuration("OUTPUT_SWEEP_INTERVAL", "1h"),
		},
		Scoring: ScoringConfig{
			KeywordWeight:     getEnvAsFloat("SCORE_KEYWORD_WEIGHT", 70),
			FormatBonus:       getEnvAsFloat("SCORE_FORMAT_BONUS", 20),
			CompletenessBonus: getEnvAsFloat("SCORE_COMPLETENESS_BONUS", 10),
			MaxMissing:        getEnvAsInt("SCORE_MAX_MISSING", 10),
		},
	}
}

// GeminiConfigured reports whether the rewrite step can reach the generative service.
func (c *Config) GeminiConfigured() bool {
	return c.Gemini.APIKey != ""
}

// OpenAIConfigured reports whether OpenAI can serve rewrites. Gemini wins when
// both keys are set.
func (c *Config) OpenAIConfigured() bool {
	return !c.GeminiConfigured() && c.OpenAI.APIKey != ""
}

// S3Configured reports whether job descriptions are mirrored to the object store.
func (c *Config) S3Configured() bool {
	return c.S3.Bucket != "" && c.S3.AccessKeyID != "" && c.S3.SecretAccessKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if valueStr == "0" {
		return 0
	}
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
