package models

import "time"

// SkillEntry is a skill development row owned by one employee.
// Progress is always held within [0,100]; writes clamp out-of-range values.
type SkillEntry struct {
	ID               string     `db:"id" json:"id"`
	EmployeeID       string     `db:"employee_id" json:"employee_id"`
	SkillName        string     `db:"skill_name" json:"skill_name"`
	LearningActivity *string    `db:"learning_activity" json:"learning_activity,omitempty"`
	Progress         int        `db:"progress" json:"progress"`
	Date             time.Time  `db:"date" json:"date"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at" json:"-"`
}

// SkillEntryDetail joins the owning employee's name and email onto a skill entry.
type SkillEntryDetail struct {
	SkillEntry
	EmployeeName  string `db:"employee_name" json:"employee_name"`
	EmployeeEmail string `db:"employee_email" json:"employee_email"`
}

// SkillFilter captures list criteria for skill entries.
type SkillFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}
