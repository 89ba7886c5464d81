package handler

import (
	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/logger"
	"cognitive-pathways/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates an account.
// @Summary Register
// @Description Creates an account and returns a token pair.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Validation failed or email already registered"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	resp, err := h.userService.Register(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login authenticates with email and password.
// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ErrorResponse "Validation failed or user not found"
// @Failure 401 {object} middleware.ErrorResponse "Invalid credentials"
// @Router /users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	resp, err := h.userService.Login(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Refresh issues a new access token from a refresh token.
// @Summary Refresh Access Token
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.RefreshResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Refresh token missing"
// @Failure 401 {object} middleware.ErrorResponse "Invalid or expired refresh token"
// @Router /users/refresh [post]
func (h *UserHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	resp, err := h.userService.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetProfile retrieves the profile of the currently authenticated user.
// @Summary Get My Profile
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	resp, err := h.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Logout acknowledges a logout. Tokens are stateless and expire on their own.
// @Summary Logout
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	logger.Get().Info("User logged out", zap.String("userID", userID))
	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out successfully"})
}
