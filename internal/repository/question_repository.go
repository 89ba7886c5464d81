package repository

import (
	"context"
	"fmt"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type sqlxQuestionRepository struct {
	db *sqlx.DB
}

func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

func toDomainQuestion(m *models.QuizQuestion) domain.Question {
	options := []string(m.Options)
	if options == nil {
		options = []string{}
	}
	return domain.Question{
		ID:        m.ID,
		Category:  domain.Category(m.Category),
		Question:  m.Question,
		Options:   options,
		CreatedAt: m.CreatedAt,
	}
}

// ListByCategory returns the questions of a category in creation order.
func (r *sqlxQuestionRepository) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Question, error) {
	var rows []models.QuizQuestion
	query := `SELECT id, category, question, options, created_at
	          FROM quiz_questions
	          WHERE category = $1
	          ORDER BY created_at ASC, id ASC`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, category.String()); err != nil {
		return nil, fmt.Errorf("failed to list questions for %s: %w", category, err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

func (r *sqlxQuestionRepository) CountQuestions(ctx context.Context) (int, error) {
	var count int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM quiz_questions`); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

func (r *sqlxQuestionRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	query := `INSERT INTO quiz_questions (id, category, question, options, created_at)
	          VALUES (:id, :category, :question, :options, :created_at)`
	row := &models.QuizQuestion{
		ID:        q.ID,
		Category:  q.Category.String(),
		Question:  q.Question,
		Options:   models.StringSlice(q.Options),
		CreatedAt: q.CreatedAt,
	}
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *sqlxQuestionRepository) DeleteAllQuestions(ctx context.Context) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM quiz_questions`); err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}
	return nil
}
