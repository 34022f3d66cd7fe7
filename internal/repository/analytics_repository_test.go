package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepositoryWorkLogStatsScoped(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"total_tasks", "completed_tasks", "in_progress_tasks"}).AddRow(12, 7, 3)
	mock.ExpectQuery(regexp.QuoteMeta("FROM work_logs WHERE deleted_at IS NULL AND date >= CURRENT_DATE - $1 * INTERVAL '1 day' AND employee_id = $2")).
		WithArgs(30, "emp-1").
		WillReturnRows(rows)

	stats, err := repo.WorkLogStats(context.Background(), "emp-1", 30)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalTasks)
	assert.Equal(t, 7, stats.CompletedTasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepositoryWorkLogStatsUnscoped(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"total_tasks", "completed_tasks", "in_progress_tasks"}).AddRow(40, 20, 10)
	mock.ExpectQuery(regexp.QuoteMeta("FROM work_logs WHERE deleted_at IS NULL AND date >= CURRENT_DATE - $1 * INTERVAL '1 day'")).
		WithArgs(7).
		WillReturnRows(rows)

	stats, err := repo.WorkLogStats(context.Background(), "", 7)
	require.NoError(t, err)
	assert.Equal(t, 40, stats.TotalTasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepositoryMoodCounts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"mood", "count"}).
		AddRow("happy", 4).
		AddRow("tired", 2)
	mock.ExpectQuery(regexp.QuoteMeta("FROM mood_feedbacks WHERE deleted_at IS NULL AND date >= CURRENT_DATE - $1 * INTERVAL '1 day' GROUP BY mood")).
		WithArgs(30).
		WillReturnRows(rows)

	counts, err := repo.MoodCounts(context.Background(), "", 30)
	require.NoError(t, err)
	assert.Len(t, counts, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepositoryTopSkillsLimit(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"skill_name", "avg_progress"}).AddRow("Go", 82.5)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY skill_name ORDER BY avg_progress DESC LIMIT 5")).
		WithArgs(30, "emp-1").
		WillReturnRows(rows)

	skills, err := repo.TopSkills(context.Background(), "emp-1", 30, 5)
	require.NoError(t, err)
	assert.Len(t, skills, 1)
	assert.InDelta(t, 82.5, skills[0].AvgProgress, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepositoryDailyActivityAscending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAnalyticsRepository(db)

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"activity_date", "work_logs", "skills", "moods"}).
		AddRow(day, 2, 1, 1).
		AddRow(day.AddDate(0, 0, 1), 0, 0, 3)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY activity_date ORDER BY activity_date ASC")).
		WithArgs(30, "emp-1").
		WillReturnRows(rows)

	activity, err := repo.DailyActivity(context.Background(), "emp-1", 30)
	require.NoError(t, err)
	require.Len(t, activity, 2)
	assert.True(t, activity[0].ActivityDate.Before(activity[1].ActivityDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}
