package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/query"
)

const moodColumns = `mf.id, mf.employee_id, mf.mood, mf.feedback, mf.date,
        mf.created_at, mf.updated_at, e.name AS employee_name, e.email AS employee_email`

var moodSortFields = map[string]string{
	"date":       "mf.date",
	"mood":       "mf.mood",
	"created_at": "mf.created_at",
}

// MoodRepository manages persistence for mood feedback entries.
type MoodRepository struct {
	db *sqlx.DB
}

// NewMoodRepository constructs a MoodRepository.
func NewMoodRepository(db *sqlx.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// List returns the actor-scoped page of mood entries plus the scoped total.
func (r *MoodRepository) List(ctx context.Context, actor query.Actor, filter models.MoodFilter, page query.Page) ([]models.MoodEntryDetail, int, error) {
	conditions := query.NewConditions("mf", actor).
		DateRange(filter.StartDate, filter.EndDate).
		Equal("mood", filter.Mood).
		Search(filter.Search, "feedback")

	base := fmt.Sprintf("FROM mood_feedbacks mf JOIN employees e ON e.id = mf.employee_id %s", conditions.Where())
	orderBy := query.ResolveSort(filter.SortBy, filter.SortOrder, moodSortFields, "mf.created_at")

	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d",
		moodColumns, base, orderBy, page.Limit, page.Offset)

	var entries []models.MoodEntryDetail
	if err := r.db.SelectContext(ctx, &entries, listQuery, conditions.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list moods: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, conditions.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count moods: %w", err)
	}
	return entries, total, nil
}

// FindByID fetches one mood entry visible to the actor.
func (r *MoodRepository) FindByID(ctx context.Context, actor query.Actor, id string) (*models.MoodEntryDetail, error) {
	conditions := query.NewConditions("mf", actor).Equal("id", id)
	q := fmt.Sprintf("SELECT %s FROM mood_feedbacks mf JOIN employees e ON e.id = mf.employee_id %s",
		moodColumns, conditions.Where())

	var detail models.MoodEntryDetail
	if err := r.db.GetContext(ctx, &detail, q, conditions.Args()...); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListForExport returns every actor-scoped mood entry, newest date first.
func (r *MoodRepository) ListForExport(ctx context.Context, actor query.Actor) ([]models.MoodEntryDetail, error) {
	conditions := query.NewConditions("mf", actor)
	q := fmt.Sprintf("SELECT %s FROM mood_feedbacks mf JOIN employees e ON e.id = mf.employee_id %s ORDER BY mf.date DESC",
		moodColumns, conditions.Where())

	var entries []models.MoodEntryDetail
	if err := r.db.SelectContext(ctx, &entries, q, conditions.Args()...); err != nil {
		return nil, fmt.Errorf("export moods: %w", err)
	}
	return entries, nil
}

// Create inserts a new mood entry row.
func (r *MoodRepository) Create(ctx context.Context, entry *models.MoodEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	const q = `INSERT INTO mood_feedbacks (id, employee_id, mood, feedback, date, created_at, updated_at)
        VALUES (:id, :employee_id, :mood, :feedback, :date, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, q, entry); err != nil {
		return fmt.Errorf("create mood: %w", err)
	}
	return nil
}

// Update rewrites the mutable columns of a mood entry.
func (r *MoodRepository) Update(ctx context.Context, entry *models.MoodEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	const q = `UPDATE mood_feedbacks SET mood = :mood, feedback = :feedback, date = :date,
        updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, q, entry); err != nil {
		return fmt.Errorf("update mood: %w", err)
	}
	return nil
}

// SoftDelete tombstones a mood entry.
func (r *MoodRepository) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE mood_feedbacks SET deleted_at = $2, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("delete mood: %w", err)
	}
	return nil
}
