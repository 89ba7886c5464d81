package models

import (
	"database/sql"
	"time"
)

// QuizQuestion is a row of the quiz_questions table.
type QuizQuestion struct {
	ID        string      `db:"id"`
	Category  string      `db:"category"`
	Question  string      `db:"question"`
	Options   StringSlice `db:"options"`
	CreatedAt time.Time   `db:"created_at"`
}

// QuizAttempt is a row of the quiz_attempts table.
type QuizAttempt struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	Category          string         `db:"category"`
	Answers           StringSlice    `db:"answers"`
	CurrentStream     sql.NullString `db:"current_stream"`
	RecommendedStream sql.NullString `db:"recommended_stream"` // NULL while processing
	TopCourses        StringSlice    `db:"top_courses"`
	AIInsights        string         `db:"ai_insights"`
	RawResponse       sql.NullString `db:"raw_response"`
	SubmittedAt       time.Time      `db:"submitted_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}
