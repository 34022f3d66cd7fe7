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

type moodRepository interface {
	List(ctx context.Context, actor query.Actor, filter models.MoodFilter, page query.Page) ([]models.MoodEntryDetail, int, error)
	FindByID(ctx context.Context, actor query.Actor, id string) (*models.MoodEntryDetail, error)
	Create(ctx context.Context, entry *models.MoodEntry) error
	Update(ctx context.Context, entry *models.MoodEntry) error
	SoftDelete(ctx context.Context, id string) error
}

// CreateMoodRequest is the payload for submitting mood feedback.
type CreateMoodRequest struct {
	Mood     string  `json:"mood" validate:"required,oneof=happy neutral stressed tired"`
	Feedback *string `json:"feedback" validate:"omitempty,max=2000"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateMoodRequest is a partial update; absent fields keep their
// stored values.
type UpdateMoodRequest struct {
	Mood     *string `json:"mood" validate:"omitempty,oneof=happy neutral stressed tired"`
	Feedback *string `json:"feedback" validate:"omitempty,max=2000"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// MoodService implements the mood feedback use cases.
type MoodService struct {
	repo      moodRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMoodService constructs a MoodService.
func NewMoodService(repo moodRepository, validate *validator.Validate, logger *zap.Logger) *MoodService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MoodService{repo: repo, validator: validate, logger: logger}
}

// List returns the actor-visible page of mood entries with pagination meta.
func (s *MoodService) List(ctx context.Context, actor query.Actor, filter models.MoodFilter) ([]models.MoodEntryDetail, query.PageMeta, error) {
	page := query.ResolvePage(filter.Page, filter.Limit)
	entries, total, err := s.repo.List(ctx, actor, filter, page)
	if err != nil {
		return nil, query.PageMeta{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list moods")
	}
	if entries == nil {
		entries = []models.MoodEntryDetail{}
	}
	return entries, query.BuildMeta(page.Number, page.Limit, total), nil
}

// Get fetches a single mood entry visible to the actor.
func (s *MoodService) Get(ctx context.Context, actor query.Actor, id string) (*models.MoodEntryDetail, error) {
	detail, err := s.repo.FindByID(ctx, actor, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "mood entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch mood entry")
	}
	return detail, nil
}

// Create records mood feedback owned by the authenticated actor.
func (s *MoodService) Create(ctx context.Context, actor query.Actor, req CreateMoodRequest) (*models.MoodEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mood payload")
	}

	day, err := resolveDay(req.Date)
	if err != nil {
		return nil, err
	}

	entry := &models.MoodEntry{
		EmployeeID: actor.ID,
		Mood:       models.Mood(req.Mood),
		Feedback:   req.Feedback,
		Date:       day,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create mood entry")
	}

	s.logger.Info("mood entry created", zap.String("mood_id", entry.ID), zap.String("employee_id", actor.ID))
	return entry, nil
}

// Update applies a partial update to a mood entry the actor can mutate.
func (s *MoodService) Update(ctx context.Context, actor query.Actor, id string, req UpdateMoodRequest) (*models.MoodEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mood payload")
	}

	existing, err := s.repo.FindByID(ctx, actor, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "mood entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch mood entry")
	}

	entry := existing.MoodEntry
	if req.Mood != nil {
		entry.Mood = models.Mood(*req.Mood)
	}
	if req.Feedback != nil {
		entry.Feedback = req.Feedback
	}
	if req.Date != nil {
		day, err := parseDay(*req.Date)
		if err != nil {
			return nil, err
		}
		entry.Date = day
	}

	if err := s.repo.Update(ctx, &entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update mood entry")
	}
	return &entry, nil
}

// Delete tombstones a mood entry the actor can mutate.
func (s *MoodService) Delete(ctx context.Context, actor query.Actor, id string) error {
	if _, err := s.repo.FindByID(ctx, actor, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "mood entry not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch mood entry")
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete mood entry")
	}
	s.logger.Info("mood entry deleted", zap.String("mood_id", id), zap.String("actor_id", actor.ID))
	return nil
}
