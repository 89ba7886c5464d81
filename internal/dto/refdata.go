package dto

import "time"

// CourseResponse represents a course in the API response
type CourseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Stream      string    `json:"stream"`
	Description string    `json:"description"`
	Careers     []string  `json:"careers"`
	Duration    string    `json:"duration,omitempty"`
	Eligibility string    `json:"eligibility,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CollegeResponse represents a college in the API response
type CollegeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Programs   []string  `json:"programs"`
	Facilities []string  `json:"facilities"`
	Type       string    `json:"type,omitempty"`
	Ranking    *int      `json:"ranking,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TimelineEventResponse represents a timeline event in the API response
type TimelineEventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PageMeta is embedded in every paginated reference-data listing.
type PageMeta struct {
	Count       int `json:"count"`
	Total       int `json:"total"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// CourseListResponse is returned by the course listing and search endpoints.
type CourseListResponse struct {
	Message    string           `json:"message"`
	SearchTerm string           `json:"searchTerm,omitempty"`
	PageMeta
	Courses []CourseResponse `json:"courses"`
}

// CollegeListResponse is returned by GET /colleges.
type CollegeListResponse struct {
	Message string `json:"message"`
	PageMeta
	Colleges []CollegeResponse `json:"colleges"`
}

// TimelineListResponse is returned by the timeline listing endpoints.
type TimelineListResponse struct {
	Message string `json:"message"`
	Period  string `json:"period,omitempty"`
	PageMeta
	Events []TimelineEventResponse `json:"events"`
}

// FacetResponse carries the distinct values of one field.
type FacetResponse struct {
	Message string   `json:"message"`
	Field   string   `json:"field"`
	Values  []string `json:"values"`
}

// CourseDetailResponse is returned by GET /courses/:id.
type CourseDetailResponse struct {
	Message string         `json:"message"`
	Course  CourseResponse `json:"course"`
}

// CollegeDetailResponse is returned by GET /colleges/:id.
type CollegeDetailResponse struct {
	Message string          `json:"message"`
	College CollegeResponse `json:"college"`
}

// TimelineEventDetailResponse is returned by GET /timeline/:id.
type TimelineEventDetailResponse struct {
	Message string                `json:"message"`
	Event   TimelineEventResponse `json:"event"`
}
