package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cognitive-pathways/internal/cache"
	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/logger"

	"go.uber.org/zap"
)

// RedisQuestionCache stores question snapshots in a shared domain.Cache.
// Entries survive process restarts and expire through the backend TTL.
// Backend failures degrade to cache misses.
type RedisQuestionCache struct {
	cache domain.Cache
	ttl   time.Duration
}

func NewRedisQuestionCache(c domain.Cache, ttl time.Duration) *RedisQuestionCache {
	return &RedisQuestionCache{cache: c, ttl: ttl}
}

func questionsKey(category domain.Category) string {
	return cache.GenerateCacheKey(cache.QuizServiceName, cache.QuestionsObjectType, category.String())
}

func (r *RedisQuestionCache) Get(ctx context.Context, category domain.Category) ([]domain.Question, bool) {
	raw, err := r.cache.Get(ctx, questionsKey(category))
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Question cache read failed", zap.String("category", category.String()), zap.Error(err))
		}
		return nil, false
	}

	var questions []domain.Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		logger.Get().Warn("Discarding undecodable question cache entry", zap.String("category", category.String()), zap.Error(err))
		_ = r.cache.Delete(ctx, questionsKey(category))
		return nil, false
	}
	if len(questions) == 0 {
		return nil, false
	}
	return questions, true
}

func (r *RedisQuestionCache) Put(ctx context.Context, category domain.Category, questions []domain.Question) {
	if len(questions) == 0 {
		return
	}
	payload, err := json.Marshal(questions)
	if err != nil {
		logger.Get().Error("Failed to encode questions for cache", zap.Error(err))
		return
	}
	if err := r.cache.Set(ctx, questionsKey(category), string(payload), r.ttl); err != nil {
		logger.Get().Warn("Question cache write failed", zap.String("category", category.String()), zap.Error(err))
	}
}

func (r *RedisQuestionCache) Invalidate(ctx context.Context, category domain.Category) {
	if err := r.cache.Delete(ctx, questionsKey(category)); err != nil {
		logger.Get().Warn("Question cache invalidation failed", zap.String("category", category.String()), zap.Error(err))
	}
}

func (r *RedisQuestionCache) InvalidateAll(ctx context.Context) {
	keys, err := r.cache.Scan(ctx, cache.KeyPattern(cache.QuizServiceName, cache.QuestionsObjectType))
	if err != nil {
		logger.Get().Warn("Question cache scan failed", zap.Error(err))
		return
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		logger.Get().Warn("Question cache flush failed", zap.Int("keys", len(keys)), zap.Error(err))
	}
}

// Keys returns the categories with a live entry.
func (r *RedisQuestionCache) Keys(ctx context.Context) []string {
	keys, err := r.cache.Scan(ctx, cache.KeyPattern(cache.QuizServiceName, cache.QuestionsObjectType))
	if err != nil {
		logger.Get().Warn("Question cache scan failed", zap.Error(err))
		return []string{}
	}
	categories := make([]string, 0, len(keys))
	for _, k := range keys {
		categories = append(categories, cache.IdentifierFromKey(k))
	}
	return categories
}
