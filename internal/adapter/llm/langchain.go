package llm

import (
	"context"
	"fmt"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const defaultTemperature = 0.1

// LangchainGenerator implements domain.TextGenerator on any langchaingo model.
type LangchainGenerator struct {
	model       llms.Model
	temperature float64
}

func NewLangchainGenerator(model llms.Model) *LangchainGenerator {
	return &LangchainGenerator{model: model, temperature: defaultTemperature}
}

// NewOllamaGenerator connects to a local Ollama server.
func NewOllamaGenerator(serverURL, modelName string) (*LangchainGenerator, error) {
	if serverURL == "" {
		return nil, domain.NewConfigurationError("Ollama server URL is not configured")
	}
	if modelName == "" {
		return nil, domain.NewConfigurationError("Ollama model name is not configured")
	}
	model, err := ollama.New(ollama.WithModel(modelName), ollama.WithServerURL(serverURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama client: %w", err)
	}
	logger.Get().Info("Initialized Ollama generator", zap.String("model", modelName), zap.String("server", serverURL))
	return NewLangchainGenerator(model), nil
}

func NewOpenAIGenerator(apiKey, modelName string) (*LangchainGenerator, error) {
	if apiKey == "" {
		return nil, domain.NewConfigurationError("OpenAI API key is not configured")
	}
	model, err := openai.New(openai.WithToken(apiKey), openai.WithModel(modelName))
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI client: %w", err)
	}
	logger.Get().Info("Initialized OpenAI generator", zap.String("model", modelName))
	return NewLangchainGenerator(model), nil
}

func (g *LangchainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return text, nil
}

var _ domain.TextGenerator = (*LangchainGenerator)(nil)
