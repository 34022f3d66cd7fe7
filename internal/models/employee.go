package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role represents the access level of an employee account.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "HR"
)

// Elevated reports whether the role may act on records of any owner.
func (r Role) Elevated() bool {
	return r == RoleManager || r == RoleHR
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager || r == RoleHR
}

// Employee represents an account stored in the employees table.
type Employee struct {
	ID           string     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         Role       `db:"role" json:"role"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}

// EmployeeInfo is the public projection returned by auth endpoints.
type EmployeeInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Info strips credential fields from an employee record.
func (e *Employee) Info() EmployeeInfo {
	return EmployeeInfo{ID: e.ID, Name: e.Name, Email: e.Email, Role: e.Role}
}

// JWTClaims is the access token payload.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}
