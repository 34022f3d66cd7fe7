package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/query"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
	"github.com/noah-isme/dayflow-go-api/pkg/export"
)

// Export entity and format identifiers accepted on the wire.
const (
	ExportWorkLogs = "work_logs"
	ExportSkills   = "skills"
	ExportMoods    = "moods"

	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type workLogExportRepository interface {
	ListForExport(ctx context.Context, actor query.Actor) ([]models.WorkLogDetail, error)
}

type skillExportRepository interface {
	ListForExport(ctx context.Context, actor query.Actor) ([]models.SkillEntryDetail, error)
}

type moodExportRepository interface {
	ListForExport(ctx context.Context, actor query.Actor) ([]models.MoodEntryDetail, error)
}

// ExportFile is a rendered download ready to stream to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders actor-scoped records as downloadable files.
type ExportService struct {
	workLogs workLogExportRepository
	skills   skillExportRepository
	moods    moodExportRepository
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(workLogs workLogExportRepository, skills skillExportRepository, moods moodExportRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		workLogs: workLogs,
		skills:   skills,
		moods:    moods,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// Export renders every record of the given entity visible to the actor.
// An empty result set is an error rather than an empty file.
func (s *ExportService) Export(ctx context.Context, actor query.Actor, entity, format string) (*ExportFile, error) {
	var (
		dataset export.Dataset
		title   string
		err     error
	)

	switch entity {
	case ExportWorkLogs:
		dataset, err = s.workLogDataset(ctx, actor)
		title = "Work Logs"
	case ExportSkills:
		dataset, err = s.skillDataset(ctx, actor)
		title = "Skill Development"
	case ExportMoods:
		dataset, err = s.moodDataset(ctx, actor)
		title = "Mood Feedback"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export entity %q", entity))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to collect export data")
	}
	if len(dataset.Rows) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNoData, "")
	}

	switch format {
	case FormatCSV, "":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{
			Filename:    entity + "_export.csv",
			ContentType: "text/csv",
			Content:     content,
		}, nil
	case FormatPDF:
		content, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{
			Filename:    entity + "_export.pdf",
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export format %q", format))
	}
}

func (s *ExportService) workLogDataset(ctx context.Context, actor query.Actor) (export.Dataset, error) {
	logs, err := s.workLogs.ListForExport(ctx, actor)
	if err != nil {
		return export.Dataset{}, err
	}

	dataset := export.Dataset{
		Headers: []string{"Date", "Employee Name", "Employee Email", "Task Description", "Status", "Comments"},
	}
	for _, log := range logs {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":             log.Date.Format(dayFormat),
			"Employee Name":    log.EmployeeName,
			"Employee Email":   log.EmployeeEmail,
			"Task Description": log.TaskDescription,
			"Status":           string(log.Status),
			"Comments":         deref(log.Comments),
		})
	}
	return dataset, nil
}

func (s *ExportService) skillDataset(ctx context.Context, actor query.Actor) (export.Dataset, error) {
	entries, err := s.skills.ListForExport(ctx, actor)
	if err != nil {
		return export.Dataset{}, err
	}

	dataset := export.Dataset{
		Headers: []string{"Date", "Employee Name", "Employee Email", "Skill Name", "Learning Activity", "Progress"},
	}
	for _, entry := range entries {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":              entry.Date.Format(dayFormat),
			"Employee Name":     entry.EmployeeName,
			"Employee Email":    entry.EmployeeEmail,
			"Skill Name":        entry.SkillName,
			"Learning Activity": deref(entry.LearningActivity),
			"Progress":          strconv.Itoa(entry.Progress),
		})
	}
	return dataset, nil
}

func (s *ExportService) moodDataset(ctx context.Context, actor query.Actor) (export.Dataset, error) {
	entries, err := s.moods.ListForExport(ctx, actor)
	if err != nil {
		return export.Dataset{}, err
	}

	dataset := export.Dataset{
		Headers: []string{"Date", "Employee Name", "Employee Email", "Mood", "Feedback"},
	}
	for _, entry := range entries {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":           entry.Date.Format(dayFormat),
			"Employee Name":  entry.EmployeeName,
			"Employee Email": entry.EmployeeEmail,
			"Mood":           string(entry.Mood),
			"Feedback":       deref(entry.Feedback),
		})
	}
	return dataset, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
