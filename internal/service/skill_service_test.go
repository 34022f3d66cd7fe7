package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/query"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
)

type mockSkillRepo struct {
	items      map[string]*models.SkillEntryDetail
	listResult []models.SkillEntryDetail
	listTotal  int
	deleted    []string
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{items: map[string]*models.SkillEntryDetail{}}
}

func (m *mockSkillRepo) List(ctx context.Context, actor query.Actor, filter models.SkillFilter, page query.Page) ([]models.SkillEntryDetail, int, error) {
	return m.listResult, m.listTotal, nil
}

func (m *mockSkillRepo) FindByID(ctx context.Context, actor query.Actor, id string) (*models.SkillEntryDetail, error) {
	detail, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if !actor.Elevated() && detail.EmployeeID != actor.ID {
		return nil, sql.ErrNoRows
	}
	cp := *detail
	return &cp, nil
}

func (m *mockSkillRepo) Create(ctx context.Context, entry *models.SkillEntry) error {
	if entry.ID == "" {
		entry.ID = "generated"
	}
	m.items[entry.ID] = &models.SkillEntryDetail{SkillEntry: *entry}
	return nil
}

func (m *mockSkillRepo) Update(ctx context.Context, entry *models.SkillEntry) error {
	m.items[entry.ID] = &models.SkillEntryDetail{SkillEntry: *entry}
	return nil
}

func (m *mockSkillRepo) SoftDelete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockSkillRepo) ListForExport(ctx context.Context, actor query.Actor) ([]models.SkillEntryDetail, error) {
	return m.listResult, nil
}

func intPtr(v int) *int { return &v }

func TestSkillServiceCreateClampsProgress(t *testing.T) {
	repo := newMockSkillRepo()
	svc := NewSkillService(repo, nil, nil)
	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}

	entry, err := svc.Create(context.Background(), actor, CreateSkillRequest{
		SkillName: "Go",
		Progress:  intPtr(150),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, entry.Progress)
	assert.Equal(t, "emp-1", entry.EmployeeID)

	entry, err = svc.Create(context.Background(), actor, CreateSkillRequest{
		SkillName: "SQL",
		Progress:  intPtr(-20),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Progress)
}

func TestSkillServiceCreateDefaultsProgressToZero(t *testing.T) {
	repo := newMockSkillRepo()
	svc := NewSkillService(repo, nil, nil)

	entry, err := svc.Create(context.Background(), query.Actor{ID: "emp-1", Role: models.RoleEmployee}, CreateSkillRequest{
		SkillName: "Kubernetes",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Progress)
}

func TestSkillServiceUpdateClampsAndKeepsAbsentFields(t *testing.T) {
	repo := newMockSkillRepo()
	activity := "reading docs"
	repo.items["sk-1"] = &models.SkillEntryDetail{SkillEntry: models.SkillEntry{
		ID:               "sk-1",
		EmployeeID:       "emp-1",
		SkillName:        "Go",
		LearningActivity: &activity,
		Progress:         40,
	}}
	svc := NewSkillService(repo, nil, nil)
	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}

	entry, err := svc.Update(context.Background(), actor, "sk-1", UpdateSkillRequest{Progress: intPtr(120)})
	require.NoError(t, err)
	assert.Equal(t, 100, entry.Progress)
	assert.Equal(t, "Go", entry.SkillName)
	require.NotNil(t, entry.LearningActivity)
	assert.Equal(t, "reading docs", *entry.LearningActivity)
}

func TestSkillServiceMutationOutsideScopeIsNotFound(t *testing.T) {
	repo := newMockSkillRepo()
	repo.items["sk-1"] = &models.SkillEntryDetail{SkillEntry: models.SkillEntry{ID: "sk-1", EmployeeID: "emp-2"}}
	svc := NewSkillService(repo, nil, nil)
	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}

	_, err := svc.Update(context.Background(), actor, "sk-1", UpdateSkillRequest{Progress: intPtr(10)})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	err = svc.Delete(context.Background(), actor, "sk-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.deleted)
}
