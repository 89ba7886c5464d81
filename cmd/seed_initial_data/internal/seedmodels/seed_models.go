package seedmodels

import (
	"encoding/json"
	"fmt"
	"time"

	"cognitive-pathways/internal/domain"
)

// DateLayout is the calendar date format used for timeline events in seed files.
const DateLayout = "2006-01-02"

// SeedQuestion defines a quiz question in the JSON seed file.
// Category accepts any spelling domain.ParseCategory understands.
type SeedQuestion struct {
	Category string   `json:"category"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// SeedCourse defines a course in the JSON seed file.
type SeedCourse struct {
	Name        string   `json:"name"`
	Stream      string   `json:"stream"`
	Description string   `json:"description"`
	Careers     []string `json:"careers"`
	Duration    string   `json:"duration"`
	Eligibility string   `json:"eligibility"`
}

// SeedCollege defines a college in the JSON seed file.
type SeedCollege struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Programs   []string `json:"programs"`
	Facilities []string `json:"facilities"`
	Type       string   `json:"type"`
	Ranking    *int     `json:"ranking,omitempty"`
}

// SeedTimelineEvent defines a timeline event in the JSON seed file.
type SeedTimelineEvent struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// Inactive defaults to false so events are listed unless marked otherwise.
	Inactive bool `json:"inactive,omitempty"`
}

// SeedData is the top level of a seed file.
type SeedData struct {
	Questions []SeedQuestion      `json:"questions"`
	Courses   []SeedCourse        `json:"courses"`
	Colleges  []SeedCollege       `json:"colleges"`
	Timeline  []SeedTimelineEvent `json:"timeline"`
}

// Parse decodes a seed file.
func Parse(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return &data, nil
}

// ToDomain converts the question, rejecting unknown categories and empty option lists.
func (q SeedQuestion) ToDomain(id string, now time.Time) (*domain.Question, error) {
	category, ok := domain.ParseCategory(q.Category)
	if !ok {
		return nil, fmt.Errorf("question %q: unknown category %q", q.Question, q.Category)
	}
	if q.Question == "" || len(q.Options) == 0 {
		return nil, fmt.Errorf("question %q: text and options are required", q.Question)
	}
	return &domain.Question{
		ID:        id,
		Category:  category,
		Question:  q.Question,
		Options:   q.Options,
		CreatedAt: now,
	}, nil
}

func (c SeedCourse) ToDomain(id string, now time.Time) *domain.Course {
	return &domain.Course{
		ID:          id,
		Name:        c.Name,
		Stream:      c.Stream,
		Description: c.Description,
		Careers:     nonNil(c.Careers),
		Duration:    c.Duration,
		Eligibility: c.Eligibility,
		CreatedAt:   now,
	}
}

func (c SeedCollege) ToDomain(id string, now time.Time) *domain.College {
	return &domain.College{
		ID:         id,
		Name:       c.Name,
		Location:   c.Location,
		Programs:   nonNil(c.Programs),
		Facilities: nonNil(c.Facilities),
		Type:       c.Type,
		Ranking:    c.Ranking,
		CreatedAt:  now,
	}
}

// ToDomain parses the event date as a UTC calendar day.
func (e SeedTimelineEvent) ToDomain(id string, now time.Time) (*domain.TimelineEvent, error) {
	date, err := time.ParseInLocation(DateLayout, e.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("timeline event %q: invalid date %q: %w", e.Title, e.Date, err)
	}
	return &domain.TimelineEvent{
		ID:          id,
		Title:       e.Title,
		Date:        date,
		Description: e.Description,
		Category:    e.Category,
		IsActive:    !e.Inactive,
		CreatedAt:   now,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
