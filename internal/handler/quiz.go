package handler

import (
	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/middleware"
	"cognitive-pathways/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// GetQuestions godoc
// @Summary Get quiz questions
// @Description Returns every question of a category, served from a 15 minute cache when possible.
// @Tags quiz
// @Produce json
// @Param category path string true "Category" Enums(foundational, 10th, class10, career, stream, 12th, class12)
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid category"
// @Failure 404 {object} middleware.ErrorResponse "No questions for the category"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/{category} [get]
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestions(c.UserContext(), middleware.CategoryFromLocals(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Records the attempt and returns AI guidance. Career submissions require the current stream.
// @Tags quiz
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param submission body dto.SubmitQuizRequest true "Quiz answers"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse "Persistence or recommendation failure"
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	resp, err := h.service.SubmitQuiz(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAttempts godoc
// @Summary List my quiz attempts
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 50)" default(10)
// @Success 200 {object} dto.QuizAttemptsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /quiz/attempts [get]
func (h *QuizHandler) GetAttempts(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetAttempts(c.UserContext(), userID, c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// InvalidateCache godoc
// @Summary Invalidate question cache
// @Description Drops one category from the question cache, or all of them when no category is given.
// @Tags quiz
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.InvalidateCacheRequest false "Category to invalidate"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/cache/invalidate [post]
func (h *QuizHandler) InvalidateCache(c *fiber.Ctx) error {
	var req dto.InvalidateCacheRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(err)
		}
	}
	resp, err := h.service.InvalidateQuestions(c.UserContext(), req.Category)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Health godoc
// @Summary Quiz service health
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizHealthResponse
// @Failure 503 {object} dto.QuizHealthResponse
// @Router /quiz/health [get]
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	resp := h.service.Health(c.UserContext())
	status := fiber.StatusOK
	if !resp.Success {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
