package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/agenthands/shortlist/internal/config"
)

func NewClient(ctx context.Context, cfg config.LLMConfig, logger *log.Logger) (LLMClient, error) {
	provider := strings.ToLower(cfg.Provider)
	opts := Options{
		Model:        cfg.Model,
		SystemPrompt: cfg.SystemPrompt,
		MaxTokens:    cfg.MaxTokens,
		Temperature:  cfg.Temperature,
	}

	switch provider {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, opts), nil

	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, opts)

	case "claude", "anthropic":
		return NewClaudeClient(cfg.APIKey, cfg.BaseURL, opts), nil

	case "ollama":
		// Ollama speaks the OpenAI chat API under /v1; the key is ignored but must be set.
		baseURL := OllamaBaseURL(cfg.BaseURL)
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		if logger != nil {
			logger.Info("using Ollama through the OpenAI-compatible API", "base_url", baseURL, "model", cfg.Model)
		}
		return NewOpenAIClient(apiKey, baseURL, opts), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}

// OllamaBaseURL appends the /v1 suffix Ollama's OpenAI-compatible API expects.
func OllamaBaseURL(baseURL string) string {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if strings.HasSuffix(baseURL, "/v1") {
		return baseURL
	}
	return fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
}
