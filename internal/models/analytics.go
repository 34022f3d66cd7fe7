package models

import "time"

// WorkLogStats aggregates task counts over the analytics window.
type WorkLogStats struct {
	TotalTasks      int `db:"total_tasks" json:"total_tasks"`
	CompletedTasks  int `db:"completed_tasks" json:"completed_tasks"`
	InProgressTasks int `db:"in_progress_tasks" json:"in_progress_tasks"`
}

// MoodCount is one grouped mood bucket.
type MoodCount struct {
	Mood  Mood `db:"mood" json:"mood"`
	Count int  `db:"count" json:"count"`
}

// SkillProgress is the average progress for one skill name.
type SkillProgress struct {
	SkillName   string  `db:"skill_name" json:"skill_name"`
	AvgProgress float64 `db:"avg_progress" json:"avg_progress"`
}

// DailyActivity counts records of each kind on one calendar day.
type DailyActivity struct {
	ActivityDate time.Time `db:"activity_date" json:"activity_date"`
	WorkLogs     int       `db:"work_logs" json:"work_logs"`
	Skills       int       `db:"skills" json:"skills"`
	Moods        int       `db:"moods" json:"moods"`
}

// DashboardAnalytics is the combined analytics payload.
type DashboardAnalytics struct {
	WorkLogs WorkLogStats    `json:"workLogs"`
	Moods    []MoodCount     `json:"moods"`
	Skills   []SkillProgress `json:"skills"`
	Activity []DailyActivity `json:"activity"`
}
