package repository

import (
	"context"
	"fmt"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/repository/models"
	"cognitive-pathways/internal/util"

	"github.com/jmoiron/sqlx"
)

const attemptColumns = `id, user_id, category, answers, current_stream, recommended_stream,
	top_courses, ai_insights, raw_response, submitted_at, updated_at`

// sqlxQuizAttemptRepository implements domain.QuizAttemptRepository using sqlx.
type sqlxQuizAttemptRepository struct {
	db *sqlx.DB
}

func NewSQLXQuizAttemptRepository(db *sqlx.DB) domain.QuizAttemptRepository {
	return &sqlxQuizAttemptRepository{db: db}
}

func toModelQuizAttempt(a *domain.QuizAttempt) *models.QuizAttempt {
	return &models.QuizAttempt{
		ID:                a.ID,
		UserID:            a.UserID,
		Category:          a.Category.String(),
		Answers:           models.StringSlice(a.Answers),
		CurrentStream:     util.StringToNullString(a.Stream),
		RecommendedStream: util.PtrToNullString(a.Result.RecommendedStream),
		TopCourses:        models.StringSlice(a.Result.TopCourses),
		AIInsights:        a.Result.AIInsights,
		RawResponse:       util.PtrToNullString(a.RawResponse),
		SubmittedAt:       a.SubmittedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func toDomainQuizAttempt(m *models.QuizAttempt) domain.QuizAttempt {
	return domain.QuizAttempt{
		ID:       m.ID,
		UserID:   m.UserID,
		Category: domain.Category(m.Category),
		Answers:  []string(m.Answers),
		Stream:   m.CurrentStream.String,
		Result: domain.AttemptResult{
			RecommendedStream: util.NullStringToPtr(m.RecommendedStream),
			TopCourses:        []string(m.TopCourses),
			AIInsights:        m.AIInsights,
		},
		RawResponse: util.NullStringToPtr(m.RawResponse),
		SubmittedAt: m.SubmittedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *sqlxQuizAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	query := `INSERT INTO quiz_attempts (` + attemptColumns + `)
	          VALUES (:id, :user_id, :category, :answers, :current_stream, :recommended_stream,
	                  :top_courses, :ai_insights, :raw_response, :submitted_at, :updated_at)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, toModelQuizAttempt(attempt)); err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

// UpdateAttemptResult overwrites the result fields and raw response of an existing attempt.
func (r *sqlxQuizAttemptRepository) UpdateAttemptResult(ctx context.Context, attempt *domain.QuizAttempt) error {
	query := `UPDATE quiz_attempts SET
	            recommended_stream = :recommended_stream,
	            top_courses = :top_courses,
	            ai_insights = :ai_insights,
	            raw_response = :raw_response,
	            updated_at = :updated_at
	          WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, toModelQuizAttempt(attempt))
	if err != nil {
		return fmt.Errorf("failed to update quiz attempt %s: %w", attempt.ID, err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("failed to update quiz attempt %s: %w", attempt.ID, err)
	}
	return nil
}

// ListAttemptsByUser returns the user's attempts, newest first.
func (r *sqlxQuizAttemptRepository) ListAttemptsByUser(ctx context.Context, userID string, pagination dto.Pagination) ([]domain.QuizAttempt, error) {
	var rows []models.QuizAttempt
	query := `SELECT ` + attemptColumns + `
	          FROM quiz_attempts
	          WHERE user_id = $1
	          ORDER BY submitted_at DESC, id DESC
	          OFFSET $2 ROWS FETCH NEXT $3 ROWS ONLY`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID, pagination.Offset, pagination.Limit); err != nil {
		return nil, fmt.Errorf("failed to list quiz attempts: %w", err)
	}

	attempts := make([]domain.QuizAttempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainQuizAttempt(&rows[i]))
	}
	return attempts, nil
}

func (r *sqlxQuizAttemptRepository) CountAttemptsByUser(ctx context.Context, userID string) (int, error) {
	var count int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM quiz_attempts WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("failed to count quiz attempts: %w", err)
	}
	return count, nil
}
