package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/query"
	"github.com/noah-isme/dayflow-go-api/pkg/config"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
)

const (
	topSkillsSelf = 5
	topSkillsAll  = 10
)

type analyticsRepository interface {
	WorkLogStats(ctx context.Context, scopeID string, days int) (*models.WorkLogStats, error)
	MoodCounts(ctx context.Context, scopeID string, days int) ([]models.MoodCount, error)
	TopSkills(ctx context.Context, scopeID string, days, limit int) ([]models.SkillProgress, error)
	DailyActivity(ctx context.Context, scopeID string, days int) ([]models.DailyActivity, error)
}

// AnalyticsService assembles the productivity dashboard. Results are
// cached per scope and window; the cache is best effort and a cold or
// unavailable Redis never fails the request.
type AnalyticsService struct {
	repo    analyticsRepository
	cache   *redis.Client
	metrics *MetricsService
	logger  *zap.Logger
	config  config.AnalyticsConfig
}

// NewAnalyticsService constructs an AnalyticsService. cache and metrics
// may be nil.
func NewAnalyticsService(repo analyticsRepository, cache *redis.Client, metrics *MetricsService, logger *zap.Logger, cfg config.AnalyticsConfig) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultWindowDays <= 0 {
		cfg.DefaultWindowDays = 30
	}
	if cfg.MaxWindowDays <= 0 {
		cfg.MaxWindowDays = 365
	}
	return &AnalyticsService{repo: repo, cache: cache, metrics: metrics, logger: logger, config: cfg}
}

// Dashboard computes the combined analytics for the actor's scope.
// Elevated actors see organisation-wide aggregates; everyone else sees
// only their own records. rawDays falls back to the default window and
// is clamped to the configured maximum.
func (s *AnalyticsService) Dashboard(ctx context.Context, actor query.Actor, rawDays string) (*models.DashboardAnalytics, error) {
	days := s.resolveWindow(rawDays)

	scopeID := ""
	skillLimit := topSkillsAll
	if !actor.Elevated() {
		scopeID = actor.ID
		skillLimit = topSkillsSelf
	}

	cacheKey := s.cacheKey(scopeID, days)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		s.metrics.RecordCacheLookup(true)
		return cached, nil
	}
	s.metrics.RecordCacheLookup(false)

	stats, err := s.repo.WorkLogStats(ctx, scopeID, days)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate work logs")
	}
	moods, err := s.repo.MoodCounts(ctx, scopeID, days)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate moods")
	}
	skills, err := s.repo.TopSkills(ctx, scopeID, days, skillLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate skills")
	}
	activity, err := s.repo.DailyActivity(ctx, scopeID, days)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate daily activity")
	}

	if moods == nil {
		moods = []models.MoodCount{}
	}
	if skills == nil {
		skills = []models.SkillProgress{}
	}
	if activity == nil {
		activity = []models.DailyActivity{}
	}

	dashboard := &models.DashboardAnalytics{
		WorkLogs: *stats,
		Moods:    moods,
		Skills:   skills,
		Activity: activity,
	}

	s.toCache(ctx, cacheKey, dashboard)
	return dashboard, nil
}

func (s *AnalyticsService) resolveWindow(rawDays string) int {
	days, err := strconv.Atoi(rawDays)
	if err != nil || days < 1 {
		days = s.config.DefaultWindowDays
	}
	if days > s.config.MaxWindowDays {
		days = s.config.MaxWindowDays
	}
	return days
}

func (s *AnalyticsService) cacheKey(scopeID string, days int) string {
	scope := scopeID
	if scope == "" {
		scope = "all"
	}
	return fmt.Sprintf("analytics:dashboard:%s:%d", scope, days)
}

func (s *AnalyticsService) fromCache(ctx context.Context, key string) *models.DashboardAnalytics {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var dashboard models.DashboardAnalytics
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		s.logger.Warn("analytics cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &dashboard
}

func (s *AnalyticsService) toCache(ctx context.Context, key string, dashboard *models.DashboardAnalytics) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(dashboard)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.config.CacheTTL).Err(); err != nil {
		s.logger.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
}
