package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/dayflow-go-api/internal/models"
)

// EmployeeRepository manages persistence for employee accounts.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository constructs an EmployeeRepository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// FindByEmail fetches a live employee by email.
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	const query = `SELECT id, name, email, password_hash, role, created_at, updated_at, deleted_at
        FROM employees WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL`
	var employee models.Employee
	if err := r.db.GetContext(ctx, &employee, query, email); err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByID fetches a live employee by ID.
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	const query = `SELECT id, name, email, password_hash, role, created_at, updated_at, deleted_at
        FROM employees WHERE id = $1 AND deleted_at IS NULL`
	var employee models.Employee
	if err := r.db.GetContext(ctx, &employee, query, id); err != nil {
		return nil, err
	}
	return &employee, nil
}

// ExistsByEmail checks whether a live employee already uses the email.
func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

// Create inserts a new employee account.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	const query = `INSERT INTO employees (id, name, email, password_hash, role, created_at, updated_at)
        VALUES (:id, :name, :email, :password_hash, :role, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, employee); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// UpdatePassword stores a new password hash for the employee.
func (r *EmployeeRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE employees SET password_hash = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, id, passwordHash, time.Now().UTC()); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
