package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ExtractorBackendPDF    = "pdf"
	ExtractorBackendGemini = "gemini"
)

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Upload    UploadConfig
	Extractor ExtractorConfig
	Analysis  AnalysisConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	AllowOrigins string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int
	MaxAttempts     int
	Timeout         time.Duration
	JSONMode        bool
}

type UploadConfig struct {
	MaxFileSize int64
}

// unlimitedBodyLimit caps request bodies when MAX_FILE_SIZE disables the per-file check.
const unlimitedBodyLimit = 1 << 30

// multipartOverhead leaves room for boundaries and part headers.
const multipartOverhead = 1 << 20

// BodyLimit is the request body size the server accepts: both /compare documents plus multipart overhead.
func (u UploadConfig) BodyLimit() int {
	if u.MaxFileSize <= 0 || u.MaxFileSize > (unlimitedBodyLimit-multipartOverhead)/2 {
		return unlimitedBodyLimit
	}
	return int(2*u.MaxFileSize) + multipartOverhead
}

type ExtractorConfig struct {
	Backend string
}

type AnalysisConfig struct {
	TargetRole string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Env:          getEnv("ENV", "development"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "https://ampli5.vercel.app"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", "120s"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GENAI_API_KEY", getEnv("GEMINI_API_KEY", "")),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:     getEnvAsFloat32("GEMINI_TEMPERATURE", 0.3),
			MaxOutputTokens: getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 8192),
			MaxAttempts:     getEnvAsInt("GEMINI_MAX_ATTEMPTS", 1),
			Timeout:         getEnvAsDuration("GEMINI_TIMEOUT", "0s"),
			JSONMode:        getEnvAsBool("GEMINI_JSON_MODE", true),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Extractor: ExtractorConfig{
			Backend: strings.ToLower(getEnv("EXTRACTOR_BACKEND", ExtractorBackendPDF)),
		},
		Analysis: AnalysisConfig{
			TargetRole: getEnv("ANALYSIS_TARGET_ROLE", "Data Analyst"),
		},
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GENAI_API_KEY is not set")
	}

	switch c.Extractor.Backend {
	case ExtractorBackendPDF, ExtractorBackendGemini:
	default:
		return fmt.Errorf("unknown extractor backend: %q", c.Extractor.Backend)
	}

	if c.Upload.MaxFileSize < 0 {
		return fmt.Errorf("MAX_FILE_SIZE must not be negative, got %d", c.Upload.MaxFileSize)
	}

	if c.Gemini.MaxAttempts < 1 {
		return fmt.Errorf("GEMINI_MAX_ATTEMPTS must be at least 1, got %d", c.Gemini.MaxAttempts)
	}

	return nil
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
