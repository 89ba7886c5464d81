package recommender

import (
	"context"
	"errors"
	"strings"
	"time"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/logger"

	"go.uber.org/zap"
)

const DefaultTimeout = 20 * time.Second

// FoundationalFallback is returned when the class 10 recommendation cannot be produced.
func FoundationalFallback() domain.Recommendation {
	return domain.Recommendation{
		RecommendedStream: "Science",
		TopCourses:        []string{},
		AIInsights: "Based on your responses, Science stream offers diverse opportunities in engineering, medicine, and research. " +
			"Consider your interests in mathematics and problem-solving. Take time to explore different career paths and " +
			"speak with professionals in fields that interest you.",
	}
}

// StreamFallback is returned when the class 12 recommendation cannot be produced.
func StreamFallback() domain.Recommendation {
	return domain.Recommendation{
		RecommendedStream: "Engineering",
		TopCourses: []string{
			"Computer Science Engineering",
			"Information Technology",
			"Mechanical Engineering",
			"Electronics Engineering",
			"Business Administration",
		},
		AIInsights: "AI insights not available at the moment. Consider exploring engineering and technology fields which " +
			"offer excellent career prospects. Focus on developing both technical and communication skills for better opportunities.",
	}
}

// Recommender implements domain.RecommendationEngine on top of a text generator.
// Generator failures and unusable replies degrade to the fixed fallback content.
type Recommender struct {
	generator domain.TextGenerator
	timeout   time.Duration
}

func NewRecommender(generator domain.TextGenerator, timeout time.Duration) *Recommender {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Recommender{generator: generator, timeout: timeout}
}

func (r *Recommender) RecommendFoundational(ctx context.Context, answers []string) (*domain.RecommendationOutcome, error) {
	return r.recommend(ctx, "foundational", FoundationalPrompt(answers), FoundationalFallback())
}

func (r *Recommender) RecommendStream(ctx context.Context, answers []string, currentStream string) (*domain.RecommendationOutcome, error) {
	return r.recommend(ctx, "stream", StreamPrompt(answers, currentStream), StreamFallback())
}

func (r *Recommender) recommend(ctx context.Context, kind, prompt string, fallback domain.Recommendation) (*domain.RecommendationOutcome, error) {
	if r.generator == nil {
		return nil, domain.NewConfigurationError("Recommendation generator is not configured")
	}
	l := logger.Get().With(zap.String("kind", kind))

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.generator.Generate(callCtx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("Recommendation request timed out", zap.Duration("timeout", r.timeout), zap.Error(err))
		} else {
			l.Error("Recommendation request failed", zap.Error(err))
		}
		return &domain.RecommendationOutcome{Recommendation: fallback, Fallback: true}, nil
	}
	l.Debug("Raw recommendation received", zap.String("raw_response", text))

	rec, ok := DecodeRecommendation(text)
	if !ok {
		l.Warn("Could not decode recommendation, using fallback", zap.Int("response_length", len(text)))
		outcome := &domain.RecommendationOutcome{Recommendation: fallback, Fallback: true}
		if strings.TrimSpace(text) != "" {
			outcome.RawResponse = &text
		}
		return outcome, nil
	}
	if rec.RecommendedStream == "" {
		rec.RecommendedStream = fallback.RecommendedStream
	}
	if rec.AIInsights == "" {
		rec.AIInsights = fallback.AIInsights
	}
	return &domain.RecommendationOutcome{Recommendation: rec, RawResponse: &text}, nil
}

var _ domain.RecommendationEngine = (*Recommender)(nil)
