package main

import (
	"context"
	"time"

	"cognitive-pathways/internal/adapter"
	"cognitive-pathways/internal/adapter/llm"
	"cognitive-pathways/internal/adapter/recommender"
	"cognitive-pathways/internal/cache"
	"cognitive-pathways/internal/config"
	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/logger"
	"cognitive-pathways/internal/service"

	"go.uber.org/zap"
)

const (
	providerGemini = "gemini"
	providerOllama = "ollama"
	providerOpenAI = "openai"
)

func noop() {}

// newQuestionCache picks the configured backend. An unreachable Redis falls
// back to the in-process cache.
func newQuestionCache(ctx context.Context, cfg *config.Config) (domain.QuestionCache, func()) {
	if cfg.Cache.Backend == config.CacheBackendRedis {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err == nil {
			logger.Get().Info("Using Redis question cache", zap.String("address", cfg.Redis.Address))
			return adapter.NewRedisQuestionCache(adapter.NewRedisCacheAdapter(client), cfg.Cache.QuestionTTL),
				func() { _ = client.Close() }
		}
		logger.Get().Warn("Redis unavailable, using in-memory question cache", zap.Error(err))
	}
	return service.NewMemoryQuestionCache(cfg.Cache.QuestionTTL, time.Now), noop
}

// newRecommendationEngine builds the engine for the configured provider. When the
// provider cannot be initialised the engine has no generator and submissions
// report CONFIGURATION_ERROR.
func newRecommendationEngine(ctx context.Context, cfg config.RecommenderConfig) (domain.RecommendationEngine, func()) {
	gen, closeFn, err := newTextGenerator(ctx, cfg)
	if err != nil {
		logger.Get().Warn("Recommendation engine disabled", zap.String("provider", cfg.Provider), zap.Error(err))
		return recommender.NewRecommender(nil, cfg.Timeout), noop
	}
	return recommender.NewRecommender(gen, cfg.Timeout), closeFn
}

func newTextGenerator(ctx context.Context, cfg config.RecommenderConfig) (domain.TextGenerator, func(), error) {
	switch cfg.Provider {
	case providerGemini:
		g, err := llm.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, nil, err
		}
		return g, func() { _ = g.Close() }, nil
	case providerOllama:
		g, err := llm.NewOllamaGenerator(cfg.Ollama.ServerURL, cfg.Ollama.Model)
		if err != nil {
			return nil, nil, err
		}
		return g, noop, nil
	case providerOpenAI:
		g, err := llm.NewOpenAIGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		if err != nil {
			return nil, nil, err
		}
		return g, noop, nil
	default:
		return nil, nil, domain.NewConfigurationError("unsupported recommender provider: " + cfg.Provider)
	}
}
