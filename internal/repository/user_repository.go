package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, first_name, last_name, email, password_hash, created_at, updated_at`

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        strings.ToLower(u.Email),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.CreatedAt,
	}
}

// CreateUser inserts a new user. A taken email yields a DUPLICATE_ERROR.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `)
	          VALUES (:id, :first_name, :last_name, :email, :password_hash, :created_at, :updated_at)`

	_, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainUser(user))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateError("User already exists with this email", err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail matches email case-insensitively.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	if err := GetExecutor(ctx, r.db).GetContext(ctx, &user, query, strings.TrimSpace(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toDomainUser(&user), nil
}

func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	if err := GetExecutor(ctx, r.db).GetContext(ctx, &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&user), nil
}
