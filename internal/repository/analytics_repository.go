package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/dayflow-go-api/internal/models"
)

// AnalyticsRepository exposes read-optimised aggregate queries over the
// three entity kinds. An empty scopeID means the caller sees everything;
// a non-empty scopeID restricts every aggregate to that owner.
type AnalyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository instantiates the repository.
func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// WorkLogStats aggregates task counts over the last `days` days.
func (r *AnalyticsRepository) WorkLogStats(ctx context.Context, scopeID string, days int) (*models.WorkLogStats, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT COUNT(*) AS total_tasks,
        COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_tasks,
        COALESCE(SUM(CASE WHEN status = 'in-progress' THEN 1 ELSE 0 END), 0) AS in_progress_tasks
        FROM work_logs WHERE deleted_at IS NULL AND date >= CURRENT_DATE - $1 * INTERVAL '1 day'`)
	args := []interface{}{days}
	if scopeID != "" {
		args = append(args, scopeID)
		builder.WriteString(fmt.Sprintf(" AND employee_id = $%d", len(args)))
	}

	var stats models.WorkLogStats
	if err := r.db.GetContext(ctx, &stats, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("work log stats: %w", err)
	}
	return &stats, nil
}

// MoodCounts groups mood entries by mood value over the window.
func (r *AnalyticsRepository) MoodCounts(ctx context.Context, scopeID string, days int) ([]models.MoodCount, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT mood, COUNT(*) AS count FROM mood_feedbacks
        WHERE deleted_at IS NULL AND date >= CURRENT_DATE - $1 * INTERVAL '1 day'`)
	args := []interface{}{days}
	if scopeID != "" {
		args = append(args, scopeID)
		builder.WriteString(fmt.Sprintf(" AND employee_id = $%d", len(args)))
	}
	builder.WriteString(" GROUP BY mood")

	var counts []models.MoodCount
	if err := r.db.SelectContext(ctx, &counts, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("mood counts: %w", err)
	}
	return counts, nil
}

// TopSkills returns the highest average progress per skill name,
// descending, capped at limit.
func (r *AnalyticsRepository) TopSkills(ctx context.Context, scopeID string, days, limit int) ([]models.SkillProgress, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT skill_name, AVG(progress) AS avg_progress FROM skill_developments
        WHERE deleted_at IS NULL AND date >= CURRENT_DATE - $1 * INTERVAL '1 day'`)
	args := []interface{}{days}
	if scopeID != "" {
		args = append(args, scopeID)
		builder.WriteString(fmt.Sprintf(" AND employee_id = $%d", len(args)))
	}
	builder.WriteString(fmt.Sprintf(" GROUP BY skill_name ORDER BY avg_progress DESC LIMIT %d", limit))

	var skills []models.SkillProgress
	if err := r.db.SelectContext(ctx, &skills, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("top skills: %w", err)
	}
	return skills, nil
}

// DailyActivity counts distinct records of each kind per calendar day
// across the window, in chronological order. Days without records still
// appear with zero counts.
func (r *AnalyticsRepository) DailyActivity(ctx context.Context, scopeID string, days int) ([]models.DailyActivity, error) {
	ownerJoin := func(alias string) string {
		if scopeID == "" {
			return ""
		}
		return fmt.Sprintf(" AND %s.employee_id = $2", alias)
	}

	q := fmt.Sprintf(`SELECT d.day::date AS activity_date,
        COUNT(DISTINCT wl.id) AS work_logs,
        COUNT(DISTINCT sd.id) AS skills,
        COUNT(DISTINCT mf.id) AS moods
        FROM generate_series(CURRENT_DATE - ($1 - 1) * INTERVAL '1 day', CURRENT_DATE, INTERVAL '1 day') AS d(day)
        LEFT JOIN work_logs wl ON wl.date = d.day::date AND wl.deleted_at IS NULL%s
        LEFT JOIN skill_developments sd ON sd.date = d.day::date AND sd.deleted_at IS NULL%s
        LEFT JOIN mood_feedbacks mf ON mf.date = d.day::date AND mf.deleted_at IS NULL%s
        GROUP BY activity_date ORDER BY activity_date ASC`,
		ownerJoin("wl"), ownerJoin("sd"), ownerJoin("mf"))

	args := []interface{}{days}
	if scopeID != "" {
		args = append(args, scopeID)
	}

	var activity []models.DailyActivity
	if err := r.db.SelectContext(ctx, &activity, q, args...); err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}
	return activity, nil
}
