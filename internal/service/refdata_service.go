package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/logger"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

const (
	defaultRefDataLimit  = 50
	defaultSearchLimit   = 20
	defaultUpcomingLimit = 10
	maxRefDataLimit      = 100
	upcomingWindow       = 30 * 24 * time.Hour
)

// RefDataService exposes read-only course, college and timeline listings.
type RefDataService interface {
	ListCourses(ctx context.Context, stream string, page, limit int) (*dto.CourseListResponse, error)
	SearchCourses(ctx context.Context, term string, page, limit int) (*dto.CourseListResponse, error)
	GetCourse(ctx context.Context, id string) (*dto.CourseDetailResponse, error)
	CourseStreams(ctx context.Context) (*dto.FacetResponse, error)

	ListColleges(ctx context.Context, location, collegeType string, page, limit int) (*dto.CollegeListResponse, error)
	GetCollege(ctx context.Context, id string) (*dto.CollegeDetailResponse, error)
	CollegeLocations(ctx context.Context) (*dto.FacetResponse, error)
	CollegeTypes(ctx context.Context) (*dto.FacetResponse, error)

	ListTimeline(ctx context.Context, category string, upcoming bool, page, limit int) (*dto.TimelineListResponse, error)
	UpcomingTimeline(ctx context.Context, limit int) (*dto.TimelineListResponse, error)
	GetTimelineEvent(ctx context.Context, id string) (*dto.TimelineEventDetailResponse, error)
	TimelineCategories(ctx context.Context) (*dto.FacetResponse, error)
}

type refDataService struct {
	repo domain.RefDataRepository
	now  func() time.Time
}

func NewRefDataService(repo domain.RefDataRepository) RefDataService {
	return &refDataService{repo: repo, now: time.Now}
}

func pageMeta(p dto.Pagination, count, total int) dto.PageMeta {
	return dto.PageMeta{
		Count:       count,
		Total:       total,
		CurrentPage: p.Page,
		TotalPages:  p.TotalPages(total),
	}
}

// copyInto maps domain rows onto response DTOs by field name.
func copyInto(to, from interface{}) error {
	if err := copier.Copy(to, from); err != nil {
		return domain.NewInternalError("Failed to map reference data", err)
	}
	return nil
}

func facet(field, message string, values []string, err error) (*dto.FacetResponse, error) {
	if err != nil {
		return nil, domain.NewPersistenceError(fmt.Sprintf("Failed to load %s", field), err)
	}
	if values == nil {
		values = []string{}
	}
	return &dto.FacetResponse{Message: message, Field: field, Values: values}, nil
}

func (s *refDataService) courseList(ctx context.Context, filter domain.CourseFilter, p dto.Pagination, message string) (*dto.CourseListResponse, error) {
	courses, total, err := s.repo.ListCourses(ctx, filter, p)
	if err != nil {
		logger.Get().Error("Failed to list courses", zap.Error(err))
		return nil, domain.NewPersistenceError("Failed to load courses", err)
	}
	out := make([]dto.CourseResponse, 0, len(courses))
	if err := copyInto(&out, &courses); err != nil {
		return nil, err
	}
	return &dto.CourseListResponse{
		Message:  message,
		PageMeta: pageMeta(p, len(out), total),
		Courses:  out,
	}, nil
}

func (s *refDataService) ListCourses(ctx context.Context, stream string, page, limit int) (*dto.CourseListResponse, error) {
	p := dto.NewPagination(page, limit, defaultRefDataLimit, maxRefDataLimit)
	return s.courseList(ctx, domain.CourseFilter{Stream: stream}, p, "Courses retrieved successfully")
}

func (s *refDataService) SearchCourses(ctx context.Context, term string, page, limit int) (*dto.CourseListResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("searchTerm")}
	}
	p := dto.NewPagination(page, limit, defaultSearchLimit, maxRefDataLimit)
	resp, err := s.courseList(ctx, domain.CourseFilter{Search: term}, p, fmt.Sprintf("Search results for %q", term))
	if err != nil {
		return nil, err
	}
	resp.SearchTerm = term
	return resp, nil
}

func (s *refDataService) GetCourse(ctx context.Context, id string) (*dto.CourseDetailResponse, error) {
	course, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to load course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError("Course not found").WithContext("id", id)
	}
	resp := &dto.CourseDetailResponse{Message: "Course retrieved successfully"}
	if err := copyInto(&resp.Course, course); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *refDataService) CourseStreams(ctx context.Context) (*dto.FacetResponse, error) {
	values, err := s.repo.DistinctCourseStreams(ctx)
	return facet("streams", "Available streams retrieved successfully", values, err)
}

func (s *refDataService) ListColleges(ctx context.Context, location, collegeType string, page, limit int) (*dto.CollegeListResponse, error) {
	p := dto.NewPagination(page, limit, defaultRefDataLimit, maxRefDataLimit)
	colleges, total, err := s.repo.ListColleges(ctx, domain.CollegeFilter{Location: location, Type: collegeType}, p)
	if err != nil {
		logger.Get().Error("Failed to list colleges", zap.Error(err))
		return nil, domain.NewPersistenceError("Failed to load colleges", err)
	}
	out := make([]dto.CollegeResponse, 0, len(colleges))
	if err := copyInto(&out, &colleges); err != nil {
		return nil, err
	}
	return &dto.CollegeListResponse{
		Message:  "Colleges retrieved successfully",
		PageMeta: pageMeta(p, len(out), total),
		Colleges: out,
	}, nil
}

func (s *refDataService) GetCollege(ctx context.Context, id string) (*dto.CollegeDetailResponse, error) {
	college, err := s.repo.GetCollege(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to load college", err)
	}
	if college == nil {
		return nil, domain.NewNotFoundError("College not found").WithContext("id", id)
	}
	resp := &dto.CollegeDetailResponse{Message: "College retrieved successfully"}
	if err := copyInto(&resp.College, college); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *refDataService) CollegeLocations(ctx context.Context) (*dto.FacetResponse, error) {
	values, err := s.repo.DistinctCollegeLocations(ctx)
	return facet("locations", "Available locations retrieved successfully", values, err)
}

func (s *refDataService) CollegeTypes(ctx context.Context) (*dto.FacetResponse, error) {
	values, err := s.repo.DistinctCollegeTypes(ctx)
	return facet("types", "Available college types retrieved successfully", values, err)
}

func (s *refDataService) timelineList(ctx context.Context, filter domain.TimelineFilter, p dto.Pagination, message string) (*dto.TimelineListResponse, error) {
	events, total, err := s.repo.ListTimelineEvents(ctx, filter, p)
	if err != nil {
		logger.Get().Error("Failed to list timeline events", zap.Error(err))
		return nil, domain.NewPersistenceError("Failed to load timeline events", err)
	}
	out := make([]dto.TimelineEventResponse, 0, len(events))
	if err := copyInto(&out, &events); err != nil {
		return nil, err
	}
	return &dto.TimelineListResponse{
		Message:  message,
		PageMeta: pageMeta(p, len(out), total),
		Events:   out,
	}, nil
}

func (s *refDataService) ListTimeline(ctx context.Context, category string, upcoming bool, page, limit int) (*dto.TimelineListResponse, error) {
	p := dto.NewPagination(page, limit, defaultRefDataLimit, maxRefDataLimit)
	filter := domain.TimelineFilter{Category: category}
	if upcoming {
		filter.From = s.now().UTC()
	}
	return s.timelineList(ctx, filter, p, "Timeline events retrieved successfully")
}

// UpcomingTimeline lists active events dated within the next 30 days.
func (s *refDataService) UpcomingTimeline(ctx context.Context, limit int) (*dto.TimelineListResponse, error) {
	p := dto.NewPagination(1, limit, defaultUpcomingLimit, maxRefDataLimit)
	now := s.now().UTC()
	resp, err := s.timelineList(ctx, domain.TimelineFilter{From: now, To: now.Add(upcomingWindow)}, p,
		"Upcoming events retrieved successfully")
	if err != nil {
		return nil, err
	}
	resp.Period = "Next 30 days"
	return resp, nil
}

func (s *refDataService) GetTimelineEvent(ctx context.Context, id string) (*dto.TimelineEventDetailResponse, error) {
	event, err := s.repo.GetTimelineEvent(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to load timeline event", err)
	}
	if event == nil {
		return nil, domain.NewNotFoundError("Timeline event not found").WithContext("id", id)
	}
	resp := &dto.TimelineEventDetailResponse{Message: "Timeline event retrieved successfully"}
	if err := copyInto(&resp.Event, event); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *refDataService) TimelineCategories(ctx context.Context) (*dto.FacetResponse, error) {
	values, err := s.repo.DistinctTimelineCategories(ctx)
	return facet("categories", "Event categories retrieved successfully", values, err)
}
