package models

import "time"

// Mood enumerates the fixed mood values.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodStressed Mood = "stressed"
	MoodTired    Mood = "tired"
)

// MoodEntry is a mood feedback row owned by one employee.
type MoodEntry struct {
	ID         string     `db:"id" json:"id"`
	EmployeeID string     `db:"employee_id" json:"employee_id"`
	Mood       Mood       `db:"mood" json:"mood"`
	Feedback   *string    `db:"feedback" json:"feedback,omitempty"`
	Date       time.Time  `db:"date" json:"date"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at" json:"-"`
}

// MoodEntryDetail joins the owning employee's name and email onto a mood entry.
type MoodEntryDetail struct {
	MoodEntry
	EmployeeName  string `db:"employee_name" json:"employee_name"`
	EmployeeEmail string `db:"employee_email" json:"employee_email"`
}

// MoodFilter captures list criteria for mood entries.
type MoodFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Mood      string
	Search    string
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}
