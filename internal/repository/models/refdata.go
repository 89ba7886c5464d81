package models

import (
	"database/sql"
	"time"
)

type Course struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Stream      string         `db:"stream"`
	Description string         `db:"description"`
	Careers     StringSlice    `db:"careers"`
	Duration    sql.NullString `db:"duration"`
	Eligibility sql.NullString `db:"eligibility"`
	CreatedAt   time.Time      `db:"created_at"`
}

type College struct {
	ID         string         `db:"id"`
	Name       string         `db:"name"`
	Location   string         `db:"location"`
	Programs   StringSlice    `db:"programs"`
	Facilities StringSlice    `db:"facilities"`
	Type       sql.NullString `db:"type"`
	Ranking    sql.NullInt64  `db:"ranking"`
	CreatedAt  time.Time      `db:"created_at"`
}

type TimelineEvent struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	EventDate   time.Time `db:"event_date"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}
