package middleware

import (
	"context"
	"errors"
	"strings"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/logger"
	"cognitive-pathways/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID"
	UserEmailKey        = "userEmail"

	minTokenLength   = 10
	placeholderToken = "your-jwt-token-here"
)

// Identity is the authenticated caller attached by Protected.
type Identity struct {
	UserID string
	Email  string
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity attached by Protected.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

func reject(c *fiber.Ctx, code domain.ErrorCode, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Code:    string(code),
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}

// Protected requires a valid access token. Credential problems are answered with 401;
// a server-side configuration failure is passed to the error handler as a 500.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(AuthorizationHeader))
		if authHeader == "" {
			return reject(c, "MISSING_AUTH_HEADER", "Authorization header is missing")
		}

		var tokenString string
		switch {
		case strings.EqualFold(authHeader, strings.TrimSpace(BearerSchema)):
			tokenString = ""
		case strings.HasPrefix(authHeader, BearerSchema):
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		default:
			return reject(c, "INVALID_AUTH_SCHEME", "Authorization header must use the Bearer scheme")
		}

		if tokenString == "" || tokenString == "null" || tokenString == "undefined" {
			return reject(c, "EMPTY_TOKEN", "Token is empty")
		}

		if tokenString == placeholderToken || len(tokenString) < minTokenLength {
			logger.Get().Warn("Suspicious authentication attempt",
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()),
				zap.Int("token_length", len(tokenString)),
			)
			return reject(c, "INVALID_TOKEN_FORMAT", "Invalid token format")
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			var domainErr *domain.DomainError
			if !errors.As(err, &domainErr) {
				return reject(c, domain.CodeTokenMalformed, "Invalid token")
			}
			if domainErr.Code == domain.CodeConfiguration {
				return err
			}
			return reject(c, domainErr.Code, domainErr.Message)
		}

		if claims.TokenType != service.TokenTypeAccess {
			return reject(c, domain.CodeInvalidTokenType, "Invalid token type: an access token is required")
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(UserEmailKey, claims.Email)
		c.SetUserContext(WithIdentity(c.UserContext(), Identity{UserID: claims.UserID, Email: claims.Email}))

		return c.Next()
	}
}

// UserIDFromLocals returns the caller id set by Protected, or "".
func UserIDFromLocals(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
