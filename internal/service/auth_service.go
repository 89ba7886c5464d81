package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cognitive-pathways/internal/config"
	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	defaultBcryptCost = 12
)

// AuthService hashes credentials and issues and verifies signed tokens.
type AuthService interface {
	HashPassword(plain string) (string, error)
	// VerifyPassword reports whether plain matches hash. An empty hash is compared
	// against a fixed dummy hash and always reports false.
	VerifyPassword(plain, hash string) bool
	IssueAccessToken(ctx context.Context, userID, email string) (string, error)
	IssueRefreshToken(ctx context.Context, userID string) (string, error)
	// ValidateJWT verifies signature, issuer, audience and time claims. Errors are
	// *domain.DomainError with a TOKEN_* or CONFIGURATION_ERROR code.
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

// AuthOption customises an AuthService.
type AuthOption func(*authServiceImpl)

// WithClock replaces time.Now for issuing and verifying tokens.
func WithClock(now func() time.Time) AuthOption {
	return func(s *authServiceImpl) { s.now = now }
}

type authServiceImpl struct {
	jwtCfg     config.JWTConfig
	bcryptCost int
	now        func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService never fails on a missing secret; token operations report
// CONFIGURATION_ERROR instead.
func NewAuthService(authCfg config.AuthConfig, opts ...AuthOption) AuthService {
	cost := authCfg.BcryptCost
	if cost == 0 {
		cost = defaultBcryptCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	s := &authServiceImpl{
		jwtCfg:     authCfg.JWT,
		bcryptCost: cost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authServiceImpl) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.ValidationErrors{domain.NewOutOfRangeError("password", len(plain), 6, 72)}
		}
		return "", domain.NewInternalError("Failed to hash password", err)
	}
	return string(hash), nil
}

func (s *authServiceImpl) VerifyPassword(plain, hash string) bool {
	if hash == "" {
		s.dummyOnce.Do(func() {
			s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("cognitive-pathways-dummy"), s.bcryptCost)
		})
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(plain))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (s *authServiceImpl) IssueAccessToken(ctx context.Context, userID, email string) (string, error) {
	return s.sign(userID, email, TokenTypeAccess, s.jwtCfg.AccessTokenTTL)
}

func (s *authServiceImpl) IssueRefreshToken(ctx context.Context, userID string) (string, error) {
	return s.sign(userID, "", TokenTypeRefresh, s.jwtCfg.RefreshTokenTTL)
}

func (s *authServiceImpl) sign(userID, email, tokenType string, ttl time.Duration) (string, error) {
	if s.jwtCfg.SecretKey == "" {
		logger.Get().Error("JWT secret key is not configured")
		return "", domain.NewConfigurationError("JWT secret key is not configured")
	}

	now := s.now()
	claims := dto.AuthClaims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			Audience:  jwt.ClaimStrings{s.jwtCfg.Audience},
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return "", domain.NewInternalError(fmt.Sprintf("Failed to sign %s token", tokenType), err)
	}
	return signed, nil
}

func tokenSnippet(token string) string {
	return token[:min(len(token), 20)] + "..."
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if s.jwtCfg.SecretKey == "" {
		logger.Get().Error("JWT secret key is not configured")
		return nil, domain.NewConfigurationError("JWT secret key is not configured")
	}
	if s.jwtCfg.Issuer == "" || s.jwtCfg.Audience == "" {
		logger.Get().Error("JWT issuer or audience is not configured")
		return nil, domain.NewConfigurationError("JWT issuer and audience must be configured")
	}

	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.jwtCfg.SecretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.jwtCfg.Issuer),
		jwt.WithAudience(s.jwtCfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		appLogger := logger.Get()
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			appLogger.Debug("JWT token expired", zap.String("token_snippet", tokenSnippet(tokenString)))
			return nil, domain.NewError(domain.CodeTokenExpired, "Token has expired", err)
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			appLogger.Warn("JWT token not yet valid", zap.String("token_snippet", tokenSnippet(tokenString)))
			return nil, domain.NewError(domain.CodeTokenNotYetValid, "Token is not yet valid", err)
		default:
			appLogger.Warn("JWT validation failed", zap.Error(err), zap.String("token_snippet", tokenSnippet(tokenString)))
			return nil, domain.NewError(domain.CodeTokenMalformed, "Invalid token", err)
		}
	}
	if !token.Valid || claims.UserID == "" {
		return nil, domain.NewError(domain.CodeTokenMalformed, "Invalid token", nil)
	}
	return claims, nil
}
