// internal/llm/factory/factory.go
package factory

import (
	"fmt"

	"github.com/oakmund/finsight/internal/config"
	"github.com/oakmund/finsight/internal/llm"
	"github.com/oakmund/finsight/internal/llm/claude"
	"github.com/oakmund/finsight/internal/llm/ollama"
	"github.com/oakmund/finsight/internal/llm/openai"
)

// New creates an LLM provider based on configuration.
func New(cfg config.LLMConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case "claude":
		return claude.New(cfg.Claude.APIKey, cfg.Claude.Model)
	case "openai":
		return openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	case "ollama":
		return ollama.New(cfg.Ollama.Endpoint, cfg.Ollama.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
