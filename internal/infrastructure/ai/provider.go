package ai

import (
	"fmt"

	"github.com/jhoicas/floor-assistant/internal/application/ports"
	"github.com/jhoicas/floor-assistant/pkg/config"
)

// NewLLMService selecciona el adaptador según AI_PROVIDER.
func NewLLMService(cfg config.AIConfig) (ports.LLMService, error) {
	switch cfg.Provider {
	case "", "anthropic":
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case "gemini":
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case "openai":
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL), nil
	default:
		return nil, fmt.Errorf("AI_PROVIDER desconocido: %q", cfg.Provider)
	}
}
