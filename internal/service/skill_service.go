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

type skillRepository interface {
	List(ctx context.Context, actor query.Actor, filter models.SkillFilter, page query.Page) ([]models.SkillEntryDetail, int, error)
	FindByID(ctx context.Context, actor query.Actor, id string) (*models.SkillEntryDetail, error)
	Create(ctx context.Context, entry *models.SkillEntry) error
	Update(ctx context.Context, entry *models.SkillEntry) error
	SoftDelete(ctx context.Context, id string) error
}

// CreateSkillRequest is the payload for recording skill development.
// Progress outside [0,100] is clamped rather than rejected.
type CreateSkillRequest struct {
	SkillName        string  `json:"skill_name" validate:"required,max=255"`
	LearningActivity *string `json:"learning_activity" validate:"omitempty,max=5000"`
	Progress         *int    `json:"progress"`
	Date             *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateSkillRequest is a partial update; absent fields keep their
// stored values.
type UpdateSkillRequest struct {
	SkillName        *string `json:"skill_name" validate:"omitempty,max=255"`
	LearningActivity *string `json:"learning_activity" validate:"omitempty,max=5000"`
	Progress         *int    `json:"progress"`
	Date             *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// SkillService implements the skill development use cases.
type SkillService struct {
	repo      skillRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSkillService constructs a SkillService.
func NewSkillService(repo skillRepository, validate *validator.Validate, logger *zap.Logger) *SkillService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkillService{repo: repo, validator: validate, logger: logger}
}

// List returns the actor-visible page of skill entries with pagination meta.
func (s *SkillService) List(ctx context.Context, actor query.Actor, filter models.SkillFilter) ([]models.SkillEntryDetail, query.PageMeta, error) {
	page := query.ResolvePage(filter.Page, filter.Limit)
	entries, total, err := s.repo.List(ctx, actor, filter, page)
	if err != nil {
		return nil, query.PageMeta{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list skills")
	}
	if entries == nil {
		entries = []models.SkillEntryDetail{}
	}
	return entries, query.BuildMeta(page.Number, page.Limit, total), nil
}

// Get fetches a single skill entry visible to the actor.
func (s *SkillService) Get(ctx context.Context, actor query.Actor, id string) (*models.SkillEntryDetail, error) {
	detail, err := s.repo.FindByID(ctx, actor, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "skill entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch skill entry")
	}
	return detail, nil
}

// Create records a skill entry owned by the authenticated actor.
func (s *SkillService) Create(ctx context.Context, actor query.Actor, req CreateSkillRequest) (*models.SkillEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid skill payload")
	}

	day, err := resolveDay(req.Date)
	if err != nil {
		return nil, err
	}
	progress := 0
	if req.Progress != nil {
		progress = clampProgress(*req.Progress)
	}

	entry := &models.SkillEntry{
		EmployeeID:       actor.ID,
		SkillName:        req.SkillName,
		LearningActivity: req.LearningActivity,
		Progress:         progress,
		Date:             day,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create skill entry")
	}

	s.logger.Info("skill entry created", zap.String("skill_id", entry.ID), zap.String("employee_id", actor.ID))
	return entry, nil
}

// Update applies a partial update to a skill entry the actor can mutate.
func (s *SkillService) Update(ctx context.Context, actor query.Actor, id string, req UpdateSkillRequest) (*models.SkillEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid skill payload")
	}

	existing, err := s.repo.FindByID(ctx, actor, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "skill entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch skill entry")
	}

	entry := existing.SkillEntry
	if req.SkillName != nil {
		entry.SkillName = *req.SkillName
	}
	if req.LearningActivity != nil {
		entry.LearningActivity = req.LearningActivity
	}
	if req.Progress != nil {
		entry.Progress = clampProgress(*req.Progress)
	}
	if req.Date != nil {
		day, err := parseDay(*req.Date)
		if err != nil {
			return nil, err
		}
		entry.Date = day
	}

	if err := s.repo.Update(ctx, &entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update skill entry")
	}
	return &entry, nil
}

// Delete tombstones a skill entry the actor can mutate.
func (s *SkillService) Delete(ctx context.Context, actor query.Actor, id string) error {
	if _, err := s.repo.FindByID(ctx, actor, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "skill entry not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch skill entry")
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete skill entry")
	}
	s.logger.Info("skill entry deleted", zap.String("skill_id", id), zap.String("actor_id", actor.ID))
	return nil
}
