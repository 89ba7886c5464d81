package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cognitive-pathways/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "created_at", "updated_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)
	now := time.Now().UTC().Truncate(time.Second)
	user := domain.NewUser("01HZX3YQ7M8E2V5KJ9W4T6B1CD", "Asha", "Verma", "Asha@Example.com", "hash", now)

	t.Run("success lowercases email", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(user.ID, "Asha", "Verma", "asha@example.com", "hash", now, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateUser(context.Background(), user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation is a duplicate error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

		err := repo.CreateUser(context.Background(), user)
		assert.Equal(t, domain.CodeDuplicate, domain.ErrorCodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnError(dbErr)

		err := repo.CreateUser(context.Background(), user)
		assert.ErrorIs(t, err, dbErr)
		assert.Empty(t, domain.ErrorCodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userRowColumns).
			AddRow("u1", "Asha", "Verma", "asha@example.com", "hash", now, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE LOWER(email) = LOWER($1)")).
			WithArgs("asha@example.com").
			WillReturnRows(rows)

		user, err := repo.GetUserByEmail(context.Background(), " asha@example.com ")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "Asha", user.FirstName)
		assert.True(t, now.Equal(user.CreatedAt))
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE LOWER(email)")).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		user, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(userRowColumns))
	user, err := repo.GetUserByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, user)

	dbErr := errors.New("timeout")
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).WillReturnError(dbErr)
	_, err = repo.GetUserByID(context.Background(), "u1")
	assert.ErrorIs(t, err, dbErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UsesTransactionFromContext(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)
	tm := NewTransactionManagerAdapter(db)
	user := domain.NewUser("u1", "Asha", "Verma", "a@b.co", "hash", time.Now())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	rollbackErr := errors.New("abort")
	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		require.NoError(t, repo.CreateUser(ctx, user))
		return rollbackErr
	})
	assert.ErrorIs(t, err, rollbackErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
