package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/query"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
)

type workLogRepository interface {
	List(ctx context.Context, actor query.Actor, filter models.WorkLogFilter, page query.Page) ([]models.WorkLogDetail, int, error)
	FindByID(ctx context.Context, actor query.Actor, id string) (*models.WorkLogDetail, error)
	Create(ctx context.Context, log *models.WorkLog) error
	Update(ctx context.Context, log *models.WorkLog) error
	SoftDelete(ctx context.Context, id string) error
}

// CreateWorkLogRequest is the payload for logging a day's task. Date
// defaults to today and status to planned when omitted.
type CreateWorkLogRequest struct {
	Date            *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TaskDescription string  `json:"task_description" validate:"required,max=5000"`
	Status          string  `json:"status" validate:"omitempty,oneof=planned in-progress completed"`
	Comments        *string `json:"comments" validate:"omitempty,max=2000"`
}

// UpdateWorkLogRequest is a partial update; absent fields keep their
// stored values.
type UpdateWorkLogRequest struct {
	Date            *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TaskDescription *string `json:"task_description" validate:"omitempty,max=5000"`
	Status          *string `json:"status" validate:"omitempty,oneof=planned in-progress completed"`
	Comments        *string `json:"comments" validate:"omitempty,max=2000"`
}

// WorkLogService implements the work log use cases.
type WorkLogService struct {
	repo      workLogRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewWorkLogService constructs a WorkLogService.
func NewWorkLogService(repo workLogRepository, validate *validator.Validate, logger *zap.Logger) *WorkLogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkLogService{repo: repo, validator: validate, logger: logger}
}

// List returns the actor-visible page of work logs with pagination meta.
func (s *WorkLogService) List(ctx context.Context, actor query.Actor, filter models.WorkLogFilter) ([]models.WorkLogDetail, query.PageMeta, error) {
	page := query.ResolvePage(filter.Page, filter.Limit)
	logs, total, err := s.repo.List(ctx, actor, filter, page)
	if err != nil {
		return nil, query.PageMeta{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list work logs")
	}
	if logs == nil {
		logs = []models.WorkLogDetail{}
	}
	return logs, query.BuildMeta(page.Number, page.Limit, total), nil
}

// Get fetches a single work log. A row outside the actor's scope is
// reported as not found.
func (s *WorkLogService) Get(ctx context.Context, actor query.Actor, id string) (*models.WorkLogDetail, error) {
	detail, err := s.repo.FindByID(ctx, actor, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "work log not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch work log")
	}
	return detail, nil
}

// Create logs a task for the authenticated actor. Ownership always
// follows the token, never the payload.
func (s *WorkLogService) Create(ctx context.Context, actor query.Actor, req CreateWorkLogRequest) (*models.WorkLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work log payload")
	}

	day, err := resolveDay(req.Date)
	if err != nil {
		return nil, err
	}
	status := models.WorkLogStatus(req.Status)
	if status == "" {
		status = models.WorkLogPlanned
	}

	log := &models.WorkLog{
		EmployeeID:      actor.ID,
		Date:            day,
		TaskDescription: req.TaskDescription,
		Status:          status,
		Comments:        req.Comments,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create work log")
	}

	s.logger.Info("work log created", zap.String("work_log_id", log.ID), zap.String("employee_id", actor.ID))
	return log, nil
}

// Update applies a partial update to a work log the actor can mutate.
func (s *WorkLogService) Update(ctx context.Context, actor query.Actor, id string, req UpdateWorkLogRequest) (*models.WorkLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work log payload")
	}

	existing, err := s.repo.FindByID(ctx, actor, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "work log not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch work log")
	}

	log := existing.WorkLog
	if req.Date != nil {
		day, err := parseDay(*req.Date)
		if err != nil {
			return nil, err
		}
		log.Date = day
	}
	if req.TaskDescription != nil {
		log.TaskDescription = *req.TaskDescription
	}
	if req.Status != nil {
		log.Status = models.WorkLogStatus(*req.Status)
	}
	if req.Comments != nil {
		log.Comments = req.Comments
	}

	if err := s.repo.Update(ctx, &log); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update work log")
	}
	return &log, nil
}

// Delete tombstones a work log the actor can mutate.
func (s *WorkLogService) Delete(ctx context.Context, actor query.Actor, id string) error {
	if _, err := s.repo.FindByID(ctx, actor, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "work log not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch work log")
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete work log")
	}
	s.logger.Info("work log deleted", zap.String("work_log_id", id), zap.String("actor_id", actor.ID))
	return nil
}
