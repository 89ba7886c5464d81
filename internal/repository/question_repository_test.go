package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cognitive-pathways/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepository_ListByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuestionRepository(db)
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "category", "question", "options", "created_at"}).
		AddRow("q1", "foundational", "Which subject do you enjoy?", `["Maths","Biology"]`, t0).
		AddRow("q2", "foundational", "Pick an activity", "", t0.Add(time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC, id ASC")).
		WithArgs("foundational").
		WillReturnRows(rows)

	questions, err := repo.ListByCategory(context.Background(), domain.CategoryFoundational)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, []string{"Maths", "Biology"}, questions[0].Options)
	assert.Equal(t, []string{}, questions[1].Options)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_ListByCategory_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuestionRepository(db)
	dbErr := errors.New("relation does not exist")

	mock.ExpectQuery("FROM quiz_questions").WillReturnError(dbErr)

	_, err := repo.ListByCategory(context.Background(), domain.CategoryCareer)
	assert.ErrorIs(t, err, dbErr)
}

func TestQuestionRepository_CreateCountDelete(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuestionRepository(db)
	now := time.Now().UTC()
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quiz_questions")).
		WithArgs("q1", "career", "Q?", `["A","B"]`, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.CreateQuestion(ctx, &domain.Question{
		ID: "q1", Category: domain.CategoryCareer, Question: "Q?", Options: []string{"A", "B"}, CreatedAt: now,
	}))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM quiz_questions")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	n, err := repo.CountQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quiz_questions")).WillReturnResult(sqlmock.NewResult(0, 12))
	require.NoError(t, repo.DeleteAllQuestions(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
