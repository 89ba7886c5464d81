package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"cognitive-pathways/internal/domain"
)

// DefaultQuestionTTL is how long a question snapshot may serve reads.
const DefaultQuestionTTL = 15 * time.Minute

type questionCacheEntry struct {
	questions []domain.Question
	fetchedAt time.Time
}

// MemoryQuestionCache is a process-local domain.QuestionCache.
// Entries expire lazily: a stale entry is dropped by the read that finds it.
type MemoryQuestionCache struct {
	mu      sync.RWMutex
	entries map[domain.Category]questionCacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryQuestionCache creates an empty cache. A nil clock means time.Now.
func NewMemoryQuestionCache(ttl time.Duration, now func() time.Time) *MemoryQuestionCache {
	if ttl <= 0 {
		ttl = DefaultQuestionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryQuestionCache{
		entries: make(map[domain.Category]questionCacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (c *MemoryQuestionCache) fresh(e questionCacheEntry) bool {
	return c.now().Sub(e.fetchedAt) < c.ttl
}

func copyQuestions(in []domain.Question) []domain.Question {
	out := make([]domain.Question, len(in))
	for i, q := range in {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

func (c *MemoryQuestionCache) Get(_ context.Context, category domain.Category) ([]domain.Question, bool) {
	c.mu.RLock()
	entry, ok := c.entries[category]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !c.fresh(entry) {
		c.mu.Lock()
		// Another writer may have refreshed the entry meanwhile.
		if cur, still := c.entries[category]; still && !c.fresh(cur) {
			delete(c.entries, category)
		}
		c.mu.Unlock()
		return nil, false
	}
	return copyQuestions(entry.questions), true
}

// Put stores a snapshot of questions. Empty lists are never cached.
func (c *MemoryQuestionCache) Put(_ context.Context, category domain.Category, questions []domain.Question) {
	if len(questions) == 0 {
		return
	}
	entry := questionCacheEntry{questions: copyQuestions(questions), fetchedAt: c.now()}
	c.mu.Lock()
	c.entries[category] = entry
	c.mu.Unlock()
}

func (c *MemoryQuestionCache) Invalidate(_ context.Context, category domain.Category) {
	c.mu.Lock()
	delete(c.entries, category)
	c.mu.Unlock()
}

func (c *MemoryQuestionCache) InvalidateAll(_ context.Context) {
	c.mu.Lock()
	c.entries = make(map[domain.Category]questionCacheEntry)
	c.mu.Unlock()
}

// Keys lists categories with a fresh entry, sorted.
func (c *MemoryQuestionCache) Keys(_ context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for cat, e := range c.entries {
		if c.fresh(e) {
			keys = append(keys, cat.String())
		}
	}
	sort.Strings(keys)
	return keys
}
