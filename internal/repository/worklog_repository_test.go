package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/query"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func workLogRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "employee_id", "date", "task_description", "status", "comments",
		"created_at", "updated_at", "employee_name", "employee_email",
	}).AddRow("wl-1", "emp-1", time.Now(), "review PRs", "completed", nil,
		time.Now(), time.Now(), "Alice", "alice@example.com")
}

func TestWorkLogRepositoryListScopedForEmployee(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWorkLogRepository(db)

	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}
	page := query.ResolvePage("2", "5")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT wl.id, wl.employee_id, wl.date, wl.task_description, wl.status, wl.comments, wl.created_at, wl.updated_at, e.name AS employee_name, e.email AS employee_email FROM work_logs wl JOIN employees e ON e.id = wl.employee_id WHERE wl.deleted_at IS NULL AND wl.employee_id = $1 AND wl.status = $2 ORDER BY wl.created_at DESC LIMIT 5 OFFSET 5")).
		WithArgs("emp-1", "completed").
		WillReturnRows(workLogRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM work_logs wl JOIN employees e ON e.id = wl.employee_id WHERE wl.deleted_at IS NULL AND wl.employee_id = $1 AND wl.status = $2")).
		WithArgs("emp-1", "completed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	logs, total, err := repo.List(context.Background(), actor, models.WorkLogFilter{Status: "completed"}, page)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, 6, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkLogRepositoryListUnscopedForHR(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWorkLogRepository(db)

	actor := query.Actor{ID: "hr-1", Role: models.RoleHR}
	page := query.ResolvePage("", "")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE wl.deleted_at IS NULL ORDER BY wl.created_at DESC LIMIT 10 OFFSET 0")).
		WillReturnRows(workLogRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, _, err := repo.List(context.Background(), actor, models.WorkLogFilter{}, page)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkLogRepositoryFindByIDOutsideScope(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWorkLogRepository(db)

	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE wl.deleted_at IS NULL AND wl.employee_id = $1 AND wl.id = $2")).
		WithArgs("emp-1", "wl-owned-by-other").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), actor, "wl-owned-by-other")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkLogRepositoryCreateAndSoftDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWorkLogRepository(db)

	mock.ExpectExec("INSERT INTO work_logs").
		WithArgs(sqlmock.AnyArg(), "emp-1", sqlmock.AnyArg(), "write tests", "planned", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	log := &models.WorkLog{EmployeeID: "emp-1", Date: time.Now(), TaskDescription: "write tests", Status: models.WorkLogPlanned}
	require.NoError(t, repo.Create(context.Background(), log))
	assert.NotEmpty(t, log.ID)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE work_logs SET deleted_at = $2, updated_at = $2 WHERE id = $1")).
		WithArgs("wl-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SoftDelete(context.Background(), "wl-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkLogRepositoryListForExportOrdersNewestFirst(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWorkLogRepository(db)

	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE wl.deleted_at IS NULL AND wl.employee_id = $1 ORDER BY wl.date DESC")).
		WithArgs("emp-1").
		WillReturnRows(workLogRows())

	logs, err := repo.ListForExport(context.Background(), actor)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
