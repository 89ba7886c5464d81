package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"cognitive-pathways/internal/config"
	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/logger"
	"cognitive-pathways/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultAttemptsLimit = 10
	defaultAttemptsMax   = 50

	// maxStreamLength matches quiz_attempts.current_stream.
	maxStreamLength = 100
)

// QuizService serves questions and runs the submission pipeline.
type QuizService interface {
	GetQuestions(ctx context.Context, category domain.Category) (*dto.QuestionsResponse, error)
	SubmitQuiz(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	GetAttempts(ctx context.Context, userID string, page, limit int) (*dto.QuizAttemptsResponse, error)
	// InvalidateQuestions drops one category, or every category when rawCategory is empty.
	InvalidateQuestions(ctx context.Context, rawCategory string) (*dto.MessageResponse, error)
	Health(ctx context.Context) *dto.QuizHealthResponse
	// ReconcileFailures counts result writes that failed after the engine answered.
	ReconcileFailures() int64
}

type quizService struct {
	questions domain.QuestionRepository
	attempts  domain.QuizAttemptRepository
	cache     domain.QuestionCache
	engine    domain.RecommendationEngine
	cfg       *config.Config
	now       func() time.Time

	fetches           singleflight.Group
	reconcileFailures atomic.Int64
}

func NewQuizService(
	questions domain.QuestionRepository,
	attempts domain.QuizAttemptRepository,
	cache domain.QuestionCache,
	engine domain.RecommendationEngine,
	cfg *config.Config,
) QuizService {
	return &quizService{
		questions: questions,
		attempts:  attempts,
		cache:     cache,
		engine:    engine,
		cfg:       cfg,
		now:       time.Now,
	}
}

func toQuestionResponses(category domain.Category, qs []domain.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(qs))
	for _, q := range qs {
		options := q.Options
		if options == nil {
			options = []string{}
		}
		out = append(out, dto.QuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Options:  options,
			QuizType: category.String(),
		})
	}
	return out
}

// GetQuestions serves from the cache when possible. Concurrent misses for the same
// category share one repository read; empty results are reported as NOT_FOUND and not cached.
func (s *quizService) GetQuestions(ctx context.Context, category domain.Category) (*dto.QuestionsResponse, error) {
	if cached, ok := s.cache.Get(ctx, category); ok {
		logger.Get().Debug("Question cache hit", zap.String("category", category.String()))
		return s.questionsResponse(category, cached, true), nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := s.fetches.Do(category.String(), func() (interface{}, error) {
		qs, err := s.questions.ListByCategory(fetchCtx, category)
		if err != nil {
			return nil, domain.NewPersistenceError("Failed to load questions", err)
		}
		if len(qs) == 0 {
			return nil, domain.NewNotFoundError(fmt.Sprintf("No questions found for %s quiz", category.DisplayName())).
				WithContext("category", category.String())
		}
		s.cache.Put(fetchCtx, category, qs)
		return qs, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Debug("Question cache miss", zap.String("category", category.String()))
	return s.questionsResponse(category, v.([]domain.Question), false), nil
}

func (s *quizService) questionsResponse(category domain.Category, qs []domain.Question, cached bool) *dto.QuestionsResponse {
	msg := fmt.Sprintf("%s quiz questions retrieved successfully", category.DisplayName())
	if cached {
		msg += " (from cache)"
	}
	return &dto.QuestionsResponse{
		Success:   true,
		Message:   msg,
		Category:  category.String(),
		Count:     len(qs),
		Questions: toQuestionResponses(category, qs),
		Cached:    cached,
		Timestamp: s.now().UTC(),
	}
}

type submission struct {
	category domain.Category
	answers  []string
	stream   string
}

func validateSubmission(req *dto.SubmitQuizRequest) (*submission, error) {
	if req == nil {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("body")}
	}

	var errs domain.ValidationErrors
	raw := req.CategoryValue()
	category, ok := domain.ParseCategory(raw)
	switch {
	case strings.TrimSpace(raw) == "":
		errs = append(errs, domain.NewMissingFieldError("category"))
	case !ok:
		errs = append(errs, domain.NewInvalidValueError("category", raw,
			"must be one of: "+strings.Join(domain.CategoryAliases(), ", ")))
	}

	if len(req.Responses) == 0 {
		errs = append(errs, domain.NewInvalidValueError("responses", nil, "must be a non-empty list of answers"))
	}

	stream := strings.TrimSpace(req.Stream)
	switch n := utf8.RuneCountInString(stream); {
	case ok && category == domain.CategoryCareer && n == 0:
		errs = append(errs, domain.NewMissingFieldError("stream"))
	case n > maxStreamLength:
		errs = append(errs, domain.NewOutOfRangeError("stream", n, 1, maxStreamLength))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &submission{category: category, answers: req.Responses, stream: stream}, nil
}

// SubmitQuiz validates, records the attempt, asks the engine and reconciles the record.
// Nothing is persisted when validation fails. An engine error fails the request and, in
// two-phase mode, leaves the placeholder record in place. A failed result write is logged
// and counted but never fails the request.
func (s *quizService) SubmitQuiz(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError(domain.CodeUnauthorized, "Authentication required")
	}
	sub, err := validateSubmission(req)
	if err != nil {
		return nil, err
	}

	appLogger := logger.Get().With(zap.String("userID", userID), zap.String("category", sub.category.String()))
	twoPhase := s.cfg.Quiz.PersistenceMode != config.PersistenceDeferred

	attempt := domain.NewPendingAttempt(util.NewULID(), userID, sub.category, sub.answers, sub.stream, s.now().UTC())
	if twoPhase {
		if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
			appLogger.Error("Failed to persist quiz attempt", zap.Error(err))
			return nil, domain.NewPersistenceError("Failed to save quiz attempt", err)
		}
	}

	outcome, err := s.recommend(ctx, sub)
	if err != nil {
		appLogger.Error("Recommendation engine failed", zap.String("attemptID", attempt.ID), zap.Error(err))
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewUpstreamError(err)
	}
	if outcome.Fallback {
		appLogger.Warn("Using fallback recommendation", zap.String("attemptID", attempt.ID))
	}

	attempt.Resolve(outcome, s.now().UTC())
	if sub.category == domain.CategoryFoundational {
		attempt.Result.TopCourses = []string{}
	}

	var writeErr error
	if twoPhase {
		writeErr = s.attempts.UpdateAttemptResult(ctx, attempt)
	} else {
		writeErr = s.attempts.CreateAttempt(ctx, attempt)
	}
	if writeErr != nil {
		s.reconcileFailures.Add(1)
		appLogger.Warn("Failed to store recommendation on quiz attempt",
			zap.String("attemptID", attempt.ID),
			zap.String("mode", s.cfg.Quiz.PersistenceMode),
			zap.Error(writeErr))
	}

	return &dto.SubmitQuizResponse{
		Success:   true,
		Message:   "Quiz submitted successfully",
		AttemptID: attempt.ID,
		Suggestions: dto.Suggestions{
			RecommendedStream: outcome.RecommendedStream,
			TopCourses:        attempt.Result.TopCourses,
			AIInsights:        outcome.AIInsights,
		},
	}, nil
}

func (s *quizService) recommend(ctx context.Context, sub *submission) (*domain.RecommendationOutcome, error) {
	if s.engine == nil {
		return nil, domain.NewConfigurationError("Recommendation engine is not configured")
	}
	var (
		outcome *domain.RecommendationOutcome
		err     error
	)
	if sub.category == domain.CategoryCareer {
		outcome, err = s.engine.RecommendStream(ctx, sub.answers, sub.stream)
	} else {
		outcome, err = s.engine.RecommendFoundational(ctx, sub.answers)
	}
	if err == nil && outcome == nil {
		err = errors.New("recommendation engine returned no result")
	}
	return outcome, err
}

func (s *quizService) GetAttempts(ctx context.Context, userID string, page, limit int) (*dto.QuizAttemptsResponse, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError(domain.CodeUnauthorized, "Authentication required")
	}
	maxLimit := s.cfg.Quiz.AttemptsMaxLimit
	if maxLimit <= 0 {
		maxLimit = defaultAttemptsMax
	}
	p := dto.NewPagination(page, limit, defaultAttemptsLimit, maxLimit)

	attempts, err := s.attempts.ListAttemptsByUser(ctx, userID, p)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to load quiz attempts", err)
	}
	total, err := s.attempts.CountAttemptsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to count quiz attempts", err)
	}

	summaries := make([]dto.QuizAttemptSummary, 0, len(attempts))
	for _, a := range attempts {
		courses := a.Result.TopCourses
		if courses == nil {
			courses = []string{}
		}
		summaries = append(summaries, dto.QuizAttemptSummary{
			ID:                a.ID,
			Category:          a.Category.String(),
			RecommendedStream: a.Result.RecommendedStream,
			TopCourses:        courses,
			AIInsights:        a.Result.AIInsights,
			Answers:           a.Answers,
			SubmittedAt:       a.SubmittedAt,
		})
	}

	return &dto.QuizAttemptsResponse{
		Success:  true,
		Message:  "Quiz attempts retrieved successfully",
		Attempts: summaries,
		Pagination: dto.PaginationInfo{
			Page:  p.Page,
			Limit: p.Limit,
			Count: len(summaries),
			Total: total,
		},
	}, nil
}

func (s *quizService) InvalidateQuestions(ctx context.Context, rawCategory string) (*dto.MessageResponse, error) {
	if strings.TrimSpace(rawCategory) == "" {
		s.cache.InvalidateAll(ctx)
		logger.Get().Info("Question cache cleared")
		return &dto.MessageResponse{Success: true, Message: "All question caches cleared"}, nil
	}

	category, ok := domain.ParseCategory(rawCategory)
	if !ok {
		return nil, domain.NewInvalidCategoryError(rawCategory)
	}
	s.cache.Invalidate(ctx, category)
	logger.Get().Info("Question cache invalidated", zap.String("category", category.String()))
	return &dto.MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Question cache cleared for %s", category.String()),
	}, nil
}

func (s *quizService) Health(ctx context.Context) *dto.QuizHealthResponse {
	start := s.now()
	count, err := s.questions.CountQuestions(ctx)
	elapsed := s.now().Sub(start)

	keys := s.cache.Keys(ctx)
	resp := &dto.QuizHealthResponse{
		Success: err == nil,
		Message: "Quiz service is healthy",
		Database: dto.DatabaseHealthInfo{
			Connected:      err == nil,
			TotalQuestions: count,
			ResponseTime:   elapsed.String(),
		},
		Cache: dto.CacheHealthInfo{
			Backend: s.cfg.Cache.Backend,
			Size:    len(keys),
			Keys:    keys,
		},
		ReconcileFailures: s.reconcileFailures.Load(),
	}
	if err != nil {
		logger.Get().Error("Quiz health check failed", zap.Error(err))
		resp.Message = "Quiz service database unavailable"
	}
	return resp
}

func (s *quizService) ReconcileFailures() int64 {
	return s.reconcileFailures.Load()
}
