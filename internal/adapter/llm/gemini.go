package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiGenerator implements domain.TextGenerator with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator creates a client for modelName. Close releases it.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, domain.NewConfigurationError("Gemini API key is not configured")
	}
	if modelName == "" {
		return nil, domain.NewConfigurationError("Gemini model name is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)

	logger.Get().Info("Initialized Gemini generator", zap.String("model", modelName))
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// responseText concatenates the text parts of every candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return sb.String()
}

var _ domain.TextGenerator = (*GeminiGenerator)(nil)
