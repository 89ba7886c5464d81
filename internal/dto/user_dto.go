package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email,omitempty"` // access tokens only
	TokenType string `json:"type"`            // "access" or "refresh"
	jwt.RegisteredClaims
}

// RegisterRequest is the body of POST /users/register.
// @Description Request body for creating an account
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3,max=50"`
	LastName  string `json:"lastName" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,min=3,max=50,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /users/login.
// @Description Request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request body for refreshing a token.
// @Description Request body for refreshing the access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserSummary is the public view of an account.
type UserSummary struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// TokenPair holds the tokens issued on login or registration.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// AuthResponse is returned by register and login.
// @Description Account summary plus token pair
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
	Tokens  TokenPair   `json:"tokens"`
}

// RefreshResponse is returned by POST /users/refresh.
type RefreshResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Tokens  TokenPair `json:"tokens"`
}

// ProfileResponse is returned by GET /users/profile.
type ProfileResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Limit  int `query:"limit"`
	Offset int `query:"-"`
	Page   int `query:"page"`
}

// NewPagination normalises page/limit query values.
// Non-positive values fall back to page 1 and defaultLimit; limit is capped at maxLimit when maxLimit > 0.
func NewPagination(page, limit, defaultLimit, maxLimit int) Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Pagination{Limit: limit, Offset: (page - 1) * limit, Page: page}
}

// TotalPages returns the number of pages needed for total items.
func (p Pagination) TotalPages(total int) int {
	if p.Limit <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Env       string    `json:"env"`
	Timestamp time.Time `json:"timestamp"`
}
