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

const skillColumns = `sd.id, sd.employee_id, sd.skill_name, sd.learning_activity, sd.progress, sd.date,
        sd.created_at, sd.updated_at, e.name AS employee_name, e.email AS employee_email`

var skillSortFields = map[string]string{
	"date":       "sd.date",
	"skill_name": "sd.skill_name",
	"progress":   "sd.progress",
	"created_at": "sd.created_at",
}

// SkillRepository manages persistence for skill development entries.
type SkillRepository struct {
	db *sqlx.DB
}

// NewSkillRepository constructs a SkillRepository.
func NewSkillRepository(db *sqlx.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// List returns the actor-scoped page of skill entries plus the scoped total.
func (r *SkillRepository) List(ctx context.Context, actor query.Actor, filter models.SkillFilter, page query.Page) ([]models.SkillEntryDetail, int, error) {
	conditions := query.NewConditions("sd", actor).
		DateRange(filter.StartDate, filter.EndDate).
		Search(filter.Search, "skill_name", "learning_activity")

	base := fmt.Sprintf("FROM skill_developments sd JOIN employees e ON e.id = sd.employee_id %s", conditions.Where())
	orderBy := query.ResolveSort(filter.SortBy, filter.SortOrder, skillSortFields, "sd.created_at")

	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d",
		skillColumns, base, orderBy, page.Limit, page.Offset)

	var entries []models.SkillEntryDetail
	if err := r.db.SelectContext(ctx, &entries, listQuery, conditions.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list skills: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, conditions.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count skills: %w", err)
	}
	return entries, total, nil
}

// FindByID fetches one skill entry visible to the actor.
func (r *SkillRepository) FindByID(ctx context.Context, actor query.Actor, id string) (*models.SkillEntryDetail, error) {
	conditions := query.NewConditions("sd", actor).Equal("id", id)
	q := fmt.Sprintf("SELECT %s FROM skill_developments sd JOIN employees e ON e.id = sd.employee_id %s",
		skillColumns, conditions.Where())

	var detail models.SkillEntryDetail
	if err := r.db.GetContext(ctx, &detail, q, conditions.Args()...); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListForExport returns every actor-scoped skill entry, newest date first.
func (r *SkillRepository) ListForExport(ctx context.Context, actor query.Actor) ([]models.SkillEntryDetail, error) {
	conditions := query.NewConditions("sd", actor)
	q := fmt.Sprintf("SELECT %s FROM skill_developments sd JOIN employees e ON e.id = sd.employee_id %s ORDER BY sd.date DESC",
		skillColumns, conditions.Where())

	var entries []models.SkillEntryDetail
	if err := r.db.SelectContext(ctx, &entries, q, conditions.Args()...); err != nil {
		return nil, fmt.Errorf("export skills: %w", err)
	}
	return entries, nil
}

// Create inserts a new skill entry row.
func (r *SkillRepository) Create(ctx context.Context, entry *models.SkillEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	const q = `INSERT INTO skill_developments (id, employee_id, skill_name, learning_activity, progress, date, created_at, updated_at)
        VALUES (:id, :employee_id, :skill_name, :learning_activity, :progress, :date, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, q, entry); err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

// Update rewrites the mutable columns of a skill entry.
func (r *SkillRepository) Update(ctx context.Context, entry *models.SkillEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	const q = `UPDATE skill_developments SET skill_name = :skill_name, learning_activity = :learning_activity,
        progress = :progress, date = :date, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, q, entry); err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	return nil
}

// SoftDelete tombstones a skill entry.
func (r *SkillRepository) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE skill_developments SET deleted_at = $2, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}
