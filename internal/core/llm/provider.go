package llm

import (
	"context"

	"github.com/lucyai/lucy-support-be/internal/config"
)

// Reply is a generated answer plus the provider's usage metadata.
type Reply struct {
	Text        string
	TotalTokens int
}

// Provider turns a composed prompt into a reply. Model and temperature
// come from the bot configuration per request, not from the provider.
type Provider interface {
	Generate(ctx context.Context, prompt, model string, temperature float32) (Reply, error)
	Name() string
	Configured() bool
}

// NewProviderFromConfig picks the provider selected by LLM_PROVIDER.
// Gemini is the default.
func NewProviderFromConfig(cfg config.Config) Provider {
	switch cfg.LLMProvider {
	case "openai":
		return NewOpenAIProvider(cfg.OpenAIKey)
	default:
		return NewGeminiProvider(cfg.GeminiKey)
	}
}
