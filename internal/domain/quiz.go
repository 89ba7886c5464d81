package domain

import (
	"context"
	"strings"
	"time"

	"cognitive-pathways/internal/dto"
)

// Category is one of the two logical quiz kinds.
type Category string

const (
	// CategoryFoundational is the pre-stream-choice quiz (class 10).
	CategoryFoundational Category = "foundational"
	// CategoryCareer is the post-stream-choice quiz (class 12 / career).
	CategoryCareer Category = "career"
)

// ProcessingInsights is the placeholder stored until the recommendation engine resolves.
const ProcessingInsights = "Processing..."

var categoryAliases = map[string]Category{
	"foundational": CategoryFoundational,
	"10th":         CategoryFoundational,
	"class10":      CategoryFoundational,
	"career":       CategoryCareer,
	"stream":       CategoryCareer,
	"12th":         CategoryCareer,
	"class12":      CategoryCareer,
}

// ParseCategory maps any accepted spelling onto the canonical category.
func ParseCategory(raw string) (Category, bool) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(raw))]
	return c, ok
}

// CategoryAliases lists accepted spellings in a stable order, for error messages.
func CategoryAliases() []string {
	return []string{"foundational", "10th", "class10", "career", "stream", "12th", "class12"}
}

// AllCategories returns the canonical categories.
func AllCategories() []Category {
	return []Category{CategoryFoundational, CategoryCareer}
}

func (c Category) String() string {
	return string(c)
}

// DisplayName is the human label used in response messages and prompts.
func (c Category) DisplayName() string {
	if c == CategoryCareer {
		return "Career"
	}
	return "Class 10"
}

// Question is a single multiple-choice quiz question.
type Question struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"createdAt"`
}

// Recommendation is the typed result of the recommendation engine.
type Recommendation struct {
	RecommendedStream string   `json:"recommendedStream"`
	TopCourses        []string `json:"topCourses"`
	AIInsights        string   `json:"aiInsights"`
}

// RecommendationOutcome carries the recommendation plus what the engine actually returned.
type RecommendationOutcome struct {
	Recommendation
	// RawResponse is the engine's reply text, nil when the engine could not be reached.
	RawResponse *string
	// Fallback reports whether the fixed fallback content was substituted.
	Fallback bool
}

// QuizAttempt is one persisted quiz submission.
type QuizAttempt struct {
	ID          string
	UserID      string
	Category    Category
	Answers     []string
	Stream      string
	Result      AttemptResult
	RawResponse *string
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// AttemptResult is the stored recommendation of an attempt.
type AttemptResult struct {
	// RecommendedStream is nil while the attempt is still processing.
	RecommendedStream *string
	TopCourses        []string
	AIInsights        string
}

// NewPendingAttempt creates an attempt with placeholder result fields.
func NewPendingAttempt(id, userID string, category Category, answers []string, stream string, now time.Time) *QuizAttempt {
	return &QuizAttempt{
		ID:       id,
		UserID:   userID,
		Category: category,
		Answers:  answers,
		Stream:   stream,
		Result: AttemptResult{
			TopCourses: []string{},
			AIInsights: ProcessingInsights,
		},
		SubmittedAt: now,
		UpdatedAt:   now,
	}
}

// Resolve fills the attempt's result with the engine outcome.
func (a *QuizAttempt) Resolve(outcome *RecommendationOutcome, now time.Time) {
	stream := outcome.RecommendedStream
	courses := outcome.TopCourses
	if courses == nil {
		courses = []string{}
	}
	a.Result = AttemptResult{
		RecommendedStream: &stream,
		TopCourses:        courses,
		AIInsights:        outcome.AIInsights,
	}
	a.RawResponse = outcome.RawResponse
	a.UpdatedAt = now
}

// IsPending reports whether the attempt still holds its placeholder result.
func (a *QuizAttempt) IsPending() bool {
	return a.Result.RecommendedStream == nil && a.Result.AIInsights == ProcessingInsights
}

// QuestionRepository reads the authoritative question set.
type QuestionRepository interface {
	ListByCategory(ctx context.Context, category Category) ([]Question, error)
	CountQuestions(ctx context.Context) (int, error)
	CreateQuestion(ctx context.Context, q *Question) error
	DeleteAllQuestions(ctx context.Context) error
}

// QuizAttemptRepository persists quiz attempts.
type QuizAttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
	UpdateAttemptResult(ctx context.Context, attempt *QuizAttempt) error
	ListAttemptsByUser(ctx context.Context, userID string, pagination dto.Pagination) ([]QuizAttempt, error)
	CountAttemptsByUser(ctx context.Context, userID string) (int, error)
}

// QuestionCache is a time-bounded store of question snapshots keyed by category.
type QuestionCache interface {
	// Get returns the cached questions; false on miss or expiry.
	Get(ctx context.Context, category Category) ([]Question, bool)
	Put(ctx context.Context, category Category, questions []Question)
	Invalidate(ctx context.Context, category Category)
	InvalidateAll(ctx context.Context)
	// Keys lists the categories currently holding a live entry.
	Keys(ctx context.Context) []string
}

// RecommendationEngine turns quiz answers into guidance.
type RecommendationEngine interface {
	RecommendFoundational(ctx context.Context, answers []string) (*RecommendationOutcome, error)
	RecommendStream(ctx context.Context, answers []string, currentStream string) (*RecommendationOutcome, error)
}

// TextGenerator is a single-prompt text completion backend.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
