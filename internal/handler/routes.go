package handler

import (
	"time"

	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/middleware"
	"cognitive-pathways/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	User    *UserHandler
	Quiz    *QuizHandler
	RefData *RefDataHandler
	Auth    service.AuthService
	Env     string
}

// HealthCheck godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Message:   "Cognitive Pathways API is running",
		Env:       h.Env,
		Timestamp: time.Now().UTC(),
	})
}

// RegisterRoutes mounts the API under router. Static segments are registered
// before parameterised ones.
func RegisterRoutes(router fiber.Router, h Handlers, vm *middleware.ValidationMiddleware) {
	protected := middleware.Protected(h.Auth)

	router.Get("/health", h.HealthCheck)

	users := router.Group("/users")
	users.Post("/register", h.User.Register)
	users.Post("/login", h.User.Login)
	users.Post("/refresh", h.User.Refresh)
	users.Get("/profile", protected, h.User.GetProfile)
	users.Post("/logout", protected, h.User.Logout)

	quiz := router.Group("/quiz")
	quiz.Get("/health", h.Quiz.Health)
	quiz.Get("/attempts", protected, h.Quiz.GetAttempts)
	quiz.Post("/submit", protected, h.Quiz.SubmitQuiz)
	quiz.Post("/cache/invalidate", protected, h.Quiz.InvalidateCache)
	quiz.Get("/:category", vm.ValidateCategory(), h.Quiz.GetQuestions)

	courses := router.Group("/courses")
	courses.Get("/", h.RefData.ListCourses)
	courses.Get("/streams", h.RefData.CourseStreams)
	courses.Get("/search/:term", h.RefData.SearchCourses)
	courses.Get("/:id", vm.ValidateID("courseId"), h.RefData.GetCourse)

	colleges := router.Group("/colleges")
	colleges.Get("/", h.RefData.ListColleges)
	colleges.Get("/locations", h.RefData.CollegeLocations)
	colleges.Get("/types", h.RefData.CollegeTypes)
	colleges.Get("/:id", vm.ValidateID("collegeId"), h.RefData.GetCollege)

	timeline := router.Group("/timeline")
	timeline.Get("/", h.RefData.ListTimeline)
	timeline.Get("/upcoming", h.RefData.UpcomingTimeline)
	timeline.Get("/categories", h.RefData.TimelineCategories)
	timeline.Get("/:id", vm.ValidateID("eventId"), h.RefData.GetTimelineEvent)
}
