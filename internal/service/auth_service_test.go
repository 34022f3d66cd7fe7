package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
)

type mockEmployeeRepo struct {
	items      map[string]*models.Employee
	emailIndex map[string]string
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{items: map[string]*models.Employee{}, emailIndex: map[string]string{}}
}

func (m *mockEmployeeRepo) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	if id, ok := m.emailIndex[email]; ok {
		cp := *m.items[id]
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEmployeeRepo) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	if employee, ok := m.items[id]; ok {
		cp := *employee
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.emailIndex[email]
	return ok, nil
}

func (m *mockEmployeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = "generated"
	}
	cp := *employee
	m.items[employee.ID] = &cp
	m.emailIndex[employee.Email] = employee.ID
	return nil
}

func (m *mockEmployeeRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if employee, ok := m.items[id]; ok {
		employee.PasswordHash = passwordHash
	}
	return nil
}

func (m *mockEmployeeRepo) seed(t *testing.T, id, email, password string, role models.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	m.items[id] = &models.Employee{ID: id, Name: "Seeded", Email: email, PasswordHash: string(hash), Role: role}
	m.emailIndex[email] = id
}

func newAuthService(repo *mockEmployeeRepo) *AuthService {
	return NewAuthService(repo, nil, nil, AuthConfig{Secret: "test-secret", Expiration: time.Hour})
}

func TestAuthServiceRegisterDefaultsRole(t *testing.T) {
	repo := newMockEmployeeRepo()
	svc := newAuthService(repo)

	info, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, info.Role)
	assert.Equal(t, "alice@example.com", info.Email)
}

func TestAuthServiceRegisterRejectsWeakPassword(t *testing.T) {
	svc := newAuthService(newMockEmployeeRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "alllowercase",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestAuthServiceRegisterConflictOnDuplicateEmail(t *testing.T) {
	repo := newMockEmployeeRepo()
	repo.seed(t, "emp-1", "taken@example.com", "Sup3rSecret", models.RoleEmployee)
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Bob",
		Email:    "taken@example.com",
		Password: "Sup3rSecret",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginIssuesValidToken(t *testing.T) {
	repo := newMockEmployeeRepo()
	repo.seed(t, "emp-1", "alice@example.com", "Sup3rSecret", models.RoleManager)
	svc := newAuthService(repo)

	res, err := svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.UserID)
	assert.Equal(t, models.RoleManager, claims.Role)
}

func TestAuthServiceLoginSameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newMockEmployeeRepo()
	repo.seed(t, "emp-1", "alice@example.com", "Sup3rSecret", models.RoleEmployee)
	svc := newAuthService(repo)

	_, errUnknown := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "Sup3rSecret"})
	_, errWrong := svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "WrongPass1"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, appErrors.FromError(errUnknown).Code, appErrors.FromError(errWrong).Code)
	assert.Equal(t, appErrors.FromError(errUnknown).Message, appErrors.FromError(errWrong).Message)
}

func TestAuthServiceValidateTokenRejectsTampered(t *testing.T) {
	repo := newMockEmployeeRepo()
	repo.seed(t, "emp-1", "alice@example.com", "Sup3rSecret", models.RoleEmployee)
	svc := newAuthService(repo)

	res, err := svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.Token + "x")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceChangePassword(t *testing.T) {
	repo := newMockEmployeeRepo()
	repo.seed(t, "emp-1", "alice@example.com", "Sup3rSecret", models.RoleEmployee)
	svc := newAuthService(repo)

	err := svc.ChangePassword(context.Background(), "emp-1", ChangePasswordRequest{
		OldPassword: "WrongOld1",
		NewPassword: "N3wSecret",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	err = svc.ChangePassword(context.Background(), "emp-1", ChangePasswordRequest{
		OldPassword: "Sup3rSecret",
		NewPassword: "N3wSecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "N3wSecret"})
	assert.NoError(t, err)
}
