package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/query"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
)

func exportFixtures() (*mockWorkLogRepo, *mockSkillRepo, *mockMoodRepo) {
	workLogs := newMockWorkLogRepo()
	comments := "half, \"quoted\""
	workLogs.listResult = []models.WorkLogDetail{{
		WorkLog: models.WorkLog{
			ID:              "wl-1",
			EmployeeID:      "emp-1",
			Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			TaskDescription: "review PRs",
			Status:          models.WorkLogCompleted,
			Comments:        &comments,
		},
		EmployeeName:  "Alice",
		EmployeeEmail: "alice@example.com",
	}}

	skills := newMockSkillRepo()
	skills.listResult = []models.SkillEntryDetail{{
		SkillEntry: models.SkillEntry{
			ID:         "sk-1",
			EmployeeID: "emp-1",
			SkillName:  "Go",
			Progress:   80,
			Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		EmployeeName:  "Alice",
		EmployeeEmail: "alice@example.com",
	}}

	moods := newMockMoodRepo()
	moods.listResult = []models.MoodEntryDetail{{
		MoodEntry: models.MoodEntry{
			ID:         "md-1",
			EmployeeID: "emp-1",
			Mood:       models.MoodHappy,
			Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		EmployeeName:  "Alice",
		EmployeeEmail: "alice@example.com",
	}}

	return workLogs, skills, moods
}

func TestExportServiceWorkLogsCSV(t *testing.T) {
	workLogs, skills, moods := exportFixtures()
	svc := NewExportService(workLogs, skills, moods, nil)
	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}

	file, err := svc.Export(context.Background(), actor, ExportWorkLogs, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "work_logs_export.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	body := string(file.Content)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Employee Name,Employee Email,Task Description,Status,Comments", lines[0])
	assert.Contains(t, lines[1], "2025-06-02")
	assert.Contains(t, lines[1], "completed")
	// csv quoting for the embedded comma and quote
	assert.Contains(t, lines[1], `"half, ""quoted"""`)
}

func TestExportServiceFilenamesPerEntity(t *testing.T) {
	workLogs, skills, moods := exportFixtures()
	svc := NewExportService(workLogs, skills, moods, nil)
	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}

	skillFile, err := svc.Export(context.Background(), actor, ExportSkills, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "skills_export.csv", skillFile.Filename)

	moodFile, err := svc.Export(context.Background(), actor, ExportMoods, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "moods_export.csv", moodFile.Filename)
}

func TestExportServicePDF(t *testing.T) {
	workLogs, skills, moods := exportFixtures()
	svc := NewExportService(workLogs, skills, moods, nil)
	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}

	file, err := svc.Export(context.Background(), actor, ExportWorkLogs, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "work_logs_export.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestExportServiceEmptyResultIsError(t *testing.T) {
	svc := NewExportService(newMockWorkLogRepo(), newMockSkillRepo(), newMockMoodRepo(), nil)
	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}

	_, err := svc.Export(context.Background(), actor, ExportWorkLogs, FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNoData.Code, appErrors.FromError(err).Code)
}

func TestExportServiceRejectsUnknownEntityAndFormat(t *testing.T) {
	workLogs, skills, moods := exportFixtures()
	svc := NewExportService(workLogs, skills, moods, nil)
	actor := query.Actor{ID: "emp-1", Role: models.RoleEmployee}

	_, err := svc.Export(context.Background(), actor, "payrolls", FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Export(context.Background(), actor, ExportWorkLogs, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
