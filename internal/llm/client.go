package llm

import (
	"context"
)

// LLMClient produces the recommendation passages. Implementations return the
// raw model text; callers parse it.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options are the generation settings shared by every provider.
type Options struct {
	Model        string
	SystemPrompt string
	MaxTokens    int
	Temperature  float32
}
