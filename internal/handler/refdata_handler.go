package handler

import (
	"cognitive-pathways/internal/middleware"
	"cognitive-pathways/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RefDataHandler serves the public course, college and timeline listings.
type RefDataHandler struct {
	service service.RefDataService
}

func NewRefDataHandler(service service.RefDataService) *RefDataHandler {
	return &RefDataHandler{service: service}
}

func respond(c *fiber.Ctx, resp interface{}, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListCourses godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Param stream query string false "Stream filter (case-insensitive substring)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.CourseListResponse
// @Router /courses [get]
func (h *RefDataHandler) ListCourses(c *fiber.Ctx) error {
	resp, err := h.service.ListCourses(c.UserContext(), c.Query("stream"), c.QueryInt("page", 1), c.QueryInt("limit", 0))
	return respond(c, resp, err)
}

// CourseStreams godoc
// @Summary Distinct course streams
// @Tags courses
// @Produce json
// @Success 200 {object} dto.FacetResponse
// @Router /courses/streams [get]
func (h *RefDataHandler) CourseStreams(c *fiber.Ctx) error {
	resp, err := h.service.CourseStreams(c.UserContext())
	return respond(c, resp, err)
}

// SearchCourses godoc
// @Summary Search courses
// @Description Matches name, description and careers.
// @Tags courses
// @Produce json
// @Param term path string true "Search term"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.CourseListResponse
// @Router /courses/search/{term} [get]
func (h *RefDataHandler) SearchCourses(c *fiber.Ctx) error {
	resp, err := h.service.SearchCourses(c.UserContext(), c.Params("term"), c.QueryInt("page", 1), c.QueryInt("limit", 0))
	return respond(c, resp, err)
}

// GetCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.CourseDetailResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid course ID format"
// @Failure 404 {object} middleware.ErrorResponse
// @Router /courses/{id} [get]
func (h *RefDataHandler) GetCourse(c *fiber.Ctx) error {
	resp, err := h.service.GetCourse(c.UserContext(), middleware.IDFromLocals(c))
	return respond(c, resp, err)
}

// ListColleges godoc
// @Summary List colleges
// @Description Ordered by ranking, then name.
// @Tags colleges
// @Produce json
// @Param location query string false "Location filter"
// @Param type query string false "Type filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.CollegeListResponse
// @Router /colleges [get]
func (h *RefDataHandler) ListColleges(c *fiber.Ctx) error {
	resp, err := h.service.ListColleges(c.UserContext(), c.Query("location"), c.Query("type"),
		c.QueryInt("page", 1), c.QueryInt("limit", 0))
	return respond(c, resp, err)
}

// CollegeLocations godoc
// @Summary Distinct college locations
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.FacetResponse
// @Router /colleges/locations [get]
func (h *RefDataHandler) CollegeLocations(c *fiber.Ctx) error {
	resp, err := h.service.CollegeLocations(c.UserContext())
	return respond(c, resp, err)
}

// CollegeTypes godoc
// @Summary Distinct college types
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.FacetResponse
// @Router /colleges/types [get]
func (h *RefDataHandler) CollegeTypes(c *fiber.Ctx) error {
	resp, err := h.service.CollegeTypes(c.UserContext())
	return respond(c, resp, err)
}

// GetCollege godoc
// @Summary Get a college
// @Tags colleges
// @Produce json
// @Param id path string true "College ID"
// @Success 200 {object} dto.CollegeDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /colleges/{id} [get]
func (h *RefDataHandler) GetCollege(c *fiber.Ctx) error {
	resp, err := h.service.GetCollege(c.UserContext(), middleware.IDFromLocals(c))
	return respond(c, resp, err)
}

// ListTimeline godoc
// @Summary List timeline events
// @Tags timeline
// @Produce json
// @Param category query string false "Category filter"
// @Param upcoming query bool false "Only events from now on"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.TimelineListResponse
// @Router /timeline [get]
func (h *RefDataHandler) ListTimeline(c *fiber.Ctx) error {
	resp, err := h.service.ListTimeline(c.UserContext(), c.Query("category"), c.QueryBool("upcoming", false),
		c.QueryInt("page", 1), c.QueryInt("limit", 0))
	return respond(c, resp, err)
}

// UpcomingTimeline godoc
// @Summary Events in the next 30 days
// @Tags timeline
// @Produce json
// @Param limit query int false "Maximum events" default(10)
// @Success 200 {object} dto.TimelineListResponse
// @Router /timeline/upcoming [get]
func (h *RefDataHandler) UpcomingTimeline(c *fiber.Ctx) error {
	resp, err := h.service.UpcomingTimeline(c.UserContext(), c.QueryInt("limit", 0))
	return respond(c, resp, err)
}

// TimelineCategories godoc
// @Summary Distinct timeline categories
// @Tags timeline
// @Produce json
// @Success 200 {object} dto.FacetResponse
// @Router /timeline/categories [get]
func (h *RefDataHandler) TimelineCategories(c *fiber.Ctx) error {
	resp, err := h.service.TimelineCategories(c.UserContext())
	return respond(c, resp, err)
}

// GetTimelineEvent godoc
// @Summary Get a timeline event
// @Tags timeline
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.TimelineEventDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /timeline/{id} [get]
func (h *RefDataHandler) GetTimelineEvent(c *fiber.Ctx) error {
	resp, err := h.service.GetTimelineEvent(c.UserContext(), middleware.IDFromLocals(c))
	return respond(c, resp, err)
}
