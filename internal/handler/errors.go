package handler

import (
	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/logger"
	"cognitive-pathways/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func invalidBody(err error) error {
	logger.Get().Debug("Failed to parse request body", zap.Error(err))
	return domain.ValidationErrors{domain.NewInvalidValueError("body", nil, "must be a valid JSON object")}
}

// requireUser returns the authenticated caller id or an UNAUTHORIZED error.
func requireUser(c *fiber.Ctx) (string, error) {
	userID := middleware.UserIDFromLocals(c)
	if userID == "" {
		return "", domain.NewUnauthorizedError(domain.CodeUnauthorized, "User ID not found in context")
	}
	return userID, nil
}
