package groq

import (
	"github.com/sashabaranov/go-openai"
)

// Model identifiers served by Groq's OpenAI-compatible endpoint.
const (
	WhisperModel = "whisper-large-v3-turbo"
	ChatModel    = "llama-3.3-70b-versatile"
)

// NewClient builds an API client against Groq's OpenAI-compatible endpoint.
// baseURL is overridable for tests and self-hosted gateways.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}
