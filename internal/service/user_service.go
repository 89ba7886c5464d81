package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/logger"
	"cognitive-pathways/internal/util"
	"cognitive-pathways/internal/validation"

	"go.uber.org/zap"
)

// UserService handles registration, login, token refresh and profile lookups.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
}

type userServiceImpl struct {
	userRepo  domain.UserRepository
	auth      AuthService
	validator *validation.Validator
	now       func() time.Time
}

func NewUserService(userRepo domain.UserRepository, auth AuthService, validator *validation.Validator) UserService {
	return &userServiceImpl{
		userRepo:  userRepo,
		auth:      auth,
		validator: validator,
		now:       time.Now,
	}
}

func toUserSummary(u *domain.User) dto.UserSummary {
	created := u.CreatedAt
	return dto.UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: &created,
	}
}

func (s *userServiceImpl) issuePair(ctx context.Context, u *domain.User) (dto.TokenPair, error) {
	access, err := s.auth.IssueAccessToken(ctx, u.ID, u.Email)
	if err != nil {
		return dto.TokenPair{}, err
	}
	refresh, err := s.auth.IssueRefreshToken(ctx, u.ID)
	if err != nil {
		return dto.TokenPair{}, err
	}
	return dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if errs := s.validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to check existing user", err)
	}
	if existing != nil {
		return nil, domain.NewDuplicateError("User already exists with this email", nil)
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(util.NewULID(), req.FirstName, req.LastName, req.Email, hash, s.now().UTC())
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if domain.ErrorCodeOf(err) == domain.CodeDuplicate {
			return nil, err
		}
		return nil, domain.NewPersistenceError("Failed to create user", err)
	}

	tokens, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("User registered", zap.String("userID", user.ID))
	return &dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		User:    toUserSummary(user),
		Tokens:  tokens,
	}, nil
}

// Login reports an unknown email as USER_NOT_FOUND (400) and a wrong password as INVALID_CREDENTIALS (401).
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if errs := s.validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to look up user", err)
	}
	if user == nil {
		s.auth.VerifyPassword(req.Password, "")
		return nil, domain.NewError(domain.CodeUserNotFound, "User not found", nil)
	}
	if !s.auth.VerifyPassword(req.Password, user.PasswordHash) {
		logger.Get().Info("Login rejected: wrong password", zap.String("userID", user.ID))
		return nil, domain.NewUnauthorizedError(domain.CodeInvalidCredentials, "Invalid credentials")
	}

	tokens, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    toUserSummary(user),
		Tokens:  tokens,
	}, nil
}

func (s *userServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("refreshToken")}
	}

	claims, err := s.auth.ValidateJWT(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, domain.NewUnauthorizedError(domain.CodeInvalidTokenType, "Invalid token type")
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewUnauthorizedError(domain.CodeUnauthorized, "Invalid refresh token")
	}

	access, err := s.auth.IssueAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{
		Success: true,
		Message: "Token refreshed successfully",
		Tokens:  dto.TokenPair{AccessToken: access},
	}, nil
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewPersistenceError(fmt.Sprintf("Failed to load user %s", userID), err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}
	return &dto.ProfileResponse{
		Success: true,
		Message: "Profile retrieved successfully",
		User:    toUserSummary(user),
	}, nil
}
