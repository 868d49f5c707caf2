package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultMaxUploadBytes caps uploaded audio payloads at 50 MiB.
	DefaultMaxUploadBytes = 50 * 1024 * 1024

	defaultGroqBaseURL   = "https://api.groq.com/openai/v1"
	defaultUploadDir     = "./uploads"
	defaultTranscriptDir = "./transcripts"
	defaultHost          = "0.0.0.0"
	defaultPort          = "5000"
)

// AllowedExtensions is the set of audio container extensions accepted for
// upload, keyed by lower-cased extension without the leading dot.
var AllowedExtensions = map[string]bool{
	"mp3":  true,
	"mp4":  true,
	"mpeg": true,
	"mpga": true,
	"m4a":  true,
	"wav":  true,
	"webm": true,
}

// Settings holds the full configuration surface of the service.
type Settings struct {
	GroqAPIKey     string
	GroqBaseURL    string
	UploadDir      string
	TranscriptDir  string
	MaxUploadBytes int64
	Host           string
	Port           string
	Environment    string
}

// LoadEnv loads environment variables from a .env file if one exists. Missing
// files are not an error; variables may be set system-wide instead.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads settings from the environment, applying defaults for everything
// except the API key, which stays empty when unset so callers can decide
// whether it is required for their mode of operation.
func Load() (*Settings, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	maxBytes := int64(DefaultMaxUploadBytes)
	if raw := strings.TrimSpace(os.Getenv("MAX_UPLOAD_BYTES")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES value %q", raw)
		}
		maxBytes = parsed
	}

	return &Settings{
		GroqAPIKey:     strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqBaseURL:    getEnvOrDefault("GROQ_BASE_URL", defaultGroqBaseURL),
		UploadDir:      getEnvOrDefault("UPLOAD_DIR", defaultUploadDir),
		TranscriptDir:  getEnvOrDefault("TRANSCRIPT_DIR", defaultTranscriptDir),
		MaxUploadBytes: maxBytes,
		Host:           getEnvOrDefault("HOST", defaultHost),
		Port:           getEnvOrDefault("PORT", defaultPort),
		Environment:    getEnvOrDefault("ENVIRONMENT", "development"),
	}, nil
}

// RequireAPIKey validates that the Groq credential is present. Serve and batch
// modes fail fast without it.
func (s *Settings) RequireAPIKey() error {
	if s.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY must be set in environment or .env file")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
