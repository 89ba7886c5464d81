package domain

import (
	"context"
	"time"

	"cognitive-pathways/internal/dto"
)

// Course is a degree or diploma programme a student can pursue.
type Course struct {
	ID          string
	Name        string
	Stream      string
	Description string
	Careers     []string
	Duration    string
	Eligibility string
	CreatedAt   time.Time
}

// College is an institution offering programmes.
type College struct {
	ID         string
	Name       string
	Location   string
	Programs   []string
	Facilities []string
	Type       string
	Ranking    *int
	CreatedAt  time.Time
}

// TimelineEvent is a dated admission or exam milestone.
type TimelineEvent struct {
	ID          string
	Title       string
	Date        time.Time
	Description string
	Category    string
	IsActive    bool
	CreatedAt   time.Time
}

// CourseFilter narrows course listings. Empty fields match everything.
type CourseFilter struct {
	Stream string
	// Search matches name, description or any career.
	Search string
}

// CollegeFilter narrows college listings.
type CollegeFilter struct {
	Location string
	Type     string
}

// TimelineFilter narrows timeline listings to active events.
type TimelineFilter struct {
	Category string
	// From and To bound the event date when non-zero.
	From time.Time
	To   time.Time
}

// RefDataRepository reads courses, colleges and timeline events.
// Get* methods return (nil, nil) when the row does not exist.
type RefDataRepository interface {
	ListCourses(ctx context.Context, filter CourseFilter, pagination dto.Pagination) ([]Course, int, error)
	GetCourse(ctx context.Context, id string) (*Course, error)
	DistinctCourseStreams(ctx context.Context) ([]string, error)
	CreateCourse(ctx context.Context, c *Course) error

	ListColleges(ctx context.Context, filter CollegeFilter, pagination dto.Pagination) ([]College, int, error)
	GetCollege(ctx context.Context, id string) (*College, error)
	DistinctCollegeLocations(ctx context.Context) ([]string, error)
	DistinctCollegeTypes(ctx context.Context) ([]string, error)
	CreateCollege(ctx context.Context, c *College) error

	ListTimelineEvents(ctx context.Context, filter TimelineFilter, pagination dto.Pagination) ([]TimelineEvent, int, error)
	GetTimelineEvent(ctx context.Context, id string) (*TimelineEvent, error)
	DistinctTimelineCategories(ctx context.Context) ([]string, error)
	CreateTimelineEvent(ctx context.Context, e *TimelineEvent) error

	DeleteAllRefData(ctx context.Context) error
}
