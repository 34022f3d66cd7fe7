package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/dayflow-go-api/internal/service"
	"github.com/noah-isme/dayflow-go-api/pkg/config"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
	"github.com/noah-isme/dayflow-go-api/pkg/response"
)

// RateLimiter enforces fixed-window request budgets per client IP,
// backed by Redis. Auth endpoints get a tighter budget than the rest of
// the API. When Redis is unreachable the limiter fails open.
type RateLimiter struct {
	client  *redis.Client
	config  config.RateLimitConfig
	metrics *service.MetricsService
	logger  *zap.Logger
}

// NewRateLimiter constructs a RateLimiter. metrics may be nil.
func NewRateLimiter(client *redis.Client, cfg config.RateLimitConfig, metrics *service.MetricsService, logger *zap.Logger) *RateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimiter{client: client, config: cfg, metrics: metrics, logger: logger}
}

// General limits all API traffic per client IP.
func (rl *RateLimiter) General() gin.HandlerFunc {
	return rl.limit("api", rl.config.Window, rl.config.MaxRequests)
}

// Auth limits credential endpoints with the tighter auth budget.
func (rl *RateLimiter) Auth() gin.HandlerFunc {
	return rl.limit("auth", rl.config.AuthWindow, rl.config.AuthMax)
}

func (rl *RateLimiter) limit(scope string, window time.Duration, max int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.config.Enabled || rl.client == nil || max <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())
		count, err := rl.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			rl.logger.Warn("rate limiter unavailable", zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			if err := rl.client.Expire(c.Request.Context(), key, window).Err(); err != nil {
				rl.logger.Warn("rate limiter expire failed", zap.String("key", key), zap.Error(err))
			}
		}

		if count > int64(max) {
			rl.metrics.RecordRateLimitRejection(scope)
			response.Error(c, appErrors.ErrRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
