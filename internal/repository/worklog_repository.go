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

// workLogColumns is the detail projection shared by every read path.
const workLogColumns = `wl.id, wl.employee_id, wl.date, wl.task_description, wl.status, wl.comments,
        wl.created_at, wl.updated_at, e.name AS employee_name, e.email AS employee_email`

var workLogSortFields = map[string]string{
	"date":       "wl.date",
	"status":     "wl.status",
	"created_at": "wl.created_at",
}

// WorkLogRepository manages persistence for daily work logs.
type WorkLogRepository struct {
	db *sqlx.DB
}

// NewWorkLogRepository constructs a WorkLogRepository.
func NewWorkLogRepository(db *sqlx.DB) *WorkLogRepository {
	return &WorkLogRepository{db: db}
}

// List returns the actor-scoped page of work logs plus the scoped total.
func (r *WorkLogRepository) List(ctx context.Context, actor query.Actor, filter models.WorkLogFilter, page query.Page) ([]models.WorkLogDetail, int, error) {
	conditions := query.NewConditions("wl", actor).
		DateRange(filter.StartDate, filter.EndDate).
		Equal("status", filter.Status).
		Search(filter.Search, "task_description", "comments")

	base := fmt.Sprintf("FROM work_logs wl JOIN employees e ON e.id = wl.employee_id %s", conditions.Where())
	orderBy := query.ResolveSort(filter.SortBy, filter.SortOrder, workLogSortFields, "wl.created_at")

	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d",
		workLogColumns, base, orderBy, page.Limit, page.Offset)

	var logs []models.WorkLogDetail
	if err := r.db.SelectContext(ctx, &logs, listQuery, conditions.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list work logs: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, conditions.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count work logs: %w", err)
	}
	return logs, total, nil
}

// FindByID fetches one work log visible to the actor. Rows outside the
// actor's scope surface as sql.ErrNoRows, indistinguishable from absence.
func (r *WorkLogRepository) FindByID(ctx context.Context, actor query.Actor, id string) (*models.WorkLogDetail, error) {
	conditions := query.NewConditions("wl", actor).Equal("id", id)
	q := fmt.Sprintf("SELECT %s FROM work_logs wl JOIN employees e ON e.id = wl.employee_id %s",
		workLogColumns, conditions.Where())

	var detail models.WorkLogDetail
	if err := r.db.GetContext(ctx, &detail, q, conditions.Args()...); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListForExport returns every actor-scoped work log, newest date first.
func (r *WorkLogRepository) ListForExport(ctx context.Context, actor query.Actor) ([]models.WorkLogDetail, error) {
	conditions := query.NewConditions("wl", actor)
	q := fmt.Sprintf("SELECT %s FROM work_logs wl JOIN employees e ON e.id = wl.employee_id %s ORDER BY wl.date DESC",
		workLogColumns, conditions.Where())

	var logs []models.WorkLogDetail
	if err := r.db.SelectContext(ctx, &logs, q, conditions.Args()...); err != nil {
		return nil, fmt.Errorf("export work logs: %w", err)
	}
	return logs, nil
}

// Create inserts a new work log row.
func (r *WorkLogRepository) Create(ctx context.Context, log *models.WorkLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now
	const q = `INSERT INTO work_logs (id, employee_id, date, task_description, status, comments, created_at, updated_at)
        VALUES (:id, :employee_id, :date, :task_description, :status, :comments, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, q, log); err != nil {
		return fmt.Errorf("create work log: %w", err)
	}
	return nil
}

// Update rewrites the mutable columns of a work log.
func (r *WorkLogRepository) Update(ctx context.Context, log *models.WorkLog) error {
	log.UpdatedAt = time.Now().UTC()
	const q = `UPDATE work_logs SET date = :date, task_description = :task_description, status = :status,
        comments = :comments, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, q, log); err != nil {
		return fmt.Errorf("update work log: %w", err)
	}
	return nil
}

// SoftDelete tombstones a work log; reads exclude it from then on.
func (r *WorkLogRepository) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE work_logs SET deleted_at = $2, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("delete work log: %w", err)
	}
	return nil
}
