package models

import "time"

// WorkLogStatus enumerates the lifecycle of a daily task entry.
type WorkLogStatus string

const (
	WorkLogPlanned    WorkLogStatus = "planned"
	WorkLogInProgress WorkLogStatus = "in-progress"
	WorkLogCompleted  WorkLogStatus = "completed"
)

// WorkLog is a daily work log row owned by one employee.
type WorkLog struct {
	ID              string        `db:"id" json:"id"`
	EmployeeID      string        `db:"employee_id" json:"employee_id"`
	Date            time.Time     `db:"date" json:"date"`
	TaskDescription string        `db:"task_description" json:"task_description"`
	Status          WorkLogStatus `db:"status" json:"status"`
	Comments        *string       `db:"comments" json:"comments,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
	DeletedAt       *time.Time    `db:"deleted_at" json:"-"`
}

// WorkLogDetail joins the owning employee's name and email onto a work log.
type WorkLogDetail struct {
	WorkLog
	EmployeeName  string `db:"employee_name" json:"employee_name"`
	EmployeeEmail string `db:"employee_email" json:"employee_email"`
}

// WorkLogFilter captures list criteria for work logs.
type WorkLogFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
	Search    string
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}
