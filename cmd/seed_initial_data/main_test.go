package main

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cognitive-pathways/cmd/seed_initial_data/internal/seedmodels"
	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{ calls atomic.Int32 }

func (p *passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls.Add(1)
	return fn(ctx)
}

type memoryStore struct {
	mu        sync.Mutex
	questions []domain.Question
	courses   []domain.Course
	colleges  []domain.College
	events    []domain.TimelineEvent
	cleared   bool
	failOn    string
}

func (m *memoryStore) ListByCategory(context.Context, domain.Category) ([]domain.Question, error) {
	return nil, nil
}

func (m *memoryStore) CountQuestions(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.questions), nil
}

func (m *memoryStore) CreateQuestion(_ context.Context, q *domain.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions = append(m.questions, *q)
	return nil
}

func (m *memoryStore) DeleteAllQuestions(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions = nil
	m.cleared = true
	return nil
}

func (m *memoryStore) ListCourses(context.Context, domain.CourseFilter, dto.Pagination) ([]domain.Course, int, error) {
	return nil, 0, nil
}
func (m *memoryStore) GetCourse(context.Context, string) (*domain.Course, error)   { return nil, nil }
func (m *memoryStore) DistinctCourseStreams(context.Context) ([]string, error)     { return nil, nil }
func (m *memoryStore) GetCollege(context.Context, string) (*domain.College, error) { return nil, nil }
func (m *memoryStore) DistinctCollegeLocations(context.Context) ([]string, error)  { return nil, nil }
func (m *memoryStore) DistinctCollegeTypes(context.Context) ([]string, error)      { return nil, nil }
func (m *memoryStore) DistinctTimelineCategories(context.Context) ([]string, error) {
	return nil, nil
}
func (m *memoryStore) ListColleges(context.Context, domain.CollegeFilter, dto.Pagination) ([]domain.College, int, error) {
	return nil, 0, nil
}
func (m *memoryStore) ListTimelineEvents(context.Context, domain.TimelineFilter, dto.Pagination) ([]domain.TimelineEvent, int, error) {
	return nil, 0, nil
}
func (m *memoryStore) GetTimelineEvent(context.Context, string) (*domain.TimelineEvent, error) {
	return nil, nil
}

func (m *memoryStore) CreateCourse(_ context.Context, c *domain.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "courses" {
		return errors.New("insert failed")
	}
	m.courses = append(m.courses, *c)
	return nil
}

func (m *memoryStore) CreateCollege(_ context.Context, c *domain.College) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.colleges = append(m.colleges, *c)
	return nil
}

func (m *memoryStore) CreateTimelineEvent(_ context.Context, e *domain.TimelineEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *e)
	return nil
}

func (m *memoryStore) DeleteAllRefData(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courses, m.colleges, m.events = nil, nil, nil
	return nil
}

func newTestSeeder(store *memoryStore) (*seeder, *passthroughTx) {
	tx := &passthroughTx{}
	return &seeder{
		tx:        tx,
		questions: store,
		refdata:   store,
		now:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}, tx
}

func TestBuiltinSeedParses(t *testing.T) {
	data, err := seedmodels.Parse(builtinSeed)
	require.NoError(t, err)
	assert.Len(t, data.Questions, 12)
	assert.Len(t, data.Courses, 14)
	assert.Len(t, data.Colleges, 8)
	assert.Len(t, data.Timeline, 10)
}

func TestSeed_WritesEveryCollection(t *testing.T) {
	data, err := seedmodels.Parse(builtinSeed)
	require.NoError(t, err)
	store := &memoryStore{}
	s, tx := newTestSeeder(store)

	require.NoError(t, s.seed(context.Background(), data, false))

	assert.Len(t, store.questions, 12)
	assert.Len(t, store.courses, 14)
	assert.Len(t, store.colleges, 8)
	assert.Len(t, store.events, 10)
	assert.Equal(t, int32(4), tx.calls.Load())

	var foundational int
	for _, q := range store.questions {
		if q.Category == domain.CategoryFoundational {
			foundational++
		}
	}
	assert.Equal(t, 6, foundational)
}

func TestSeed_RefusesWhenAlreadySeeded(t *testing.T) {
	store := &memoryStore{questions: []domain.Question{{ID: "existing"}}}
	s, _ := newTestSeeder(store)

	err := s.seed(context.Background(), &seedmodels.SeedData{}, false)
	assert.ErrorIs(t, err, errAlreadySeeded)
}

func TestSeed_ResetClearsFirst(t *testing.T) {
	store := &memoryStore{
		questions: []domain.Question{{ID: "old"}},
		courses:   []domain.Course{{ID: "old"}},
	}
	s, tx := newTestSeeder(store)
	data := &seedmodels.SeedData{
		Questions: []seedmodels.SeedQuestion{{Category: "career", Question: "Q?", Options: []string{"A"}}},
	}

	require.NoError(t, s.seed(context.Background(), data, true))

	assert.True(t, store.cleared)
	require.Len(t, store.questions, 1)
	assert.Equal(t, "Q?", store.questions[0].Question)
	assert.Empty(t, store.courses)
	assert.Equal(t, int32(5), tx.calls.Load())
}

func TestSeed_PropagatesCollectionFailure(t *testing.T) {
	store := &memoryStore{failOn: "courses"}
	s, _ := newTestSeeder(store)
	data := &seedmodels.SeedData{Courses: []seedmodels.SeedCourse{{Name: "BA"}}}

	err := s.seed(context.Background(), data, false)
	assert.ErrorContains(t, err, "seed courses")
}

func TestSeed_RejectsInvalidQuestion(t *testing.T) {
	store := &memoryStore{}
	s, _ := newTestSeeder(store)
	data := &seedmodels.SeedData{
		Questions: []seedmodels.SeedQuestion{{Category: "class11", Question: "Q?", Options: []string{"A"}}},
	}

	err := s.seed(context.Background(), data, false)
	assert.ErrorContains(t, err, "unknown category")
}
