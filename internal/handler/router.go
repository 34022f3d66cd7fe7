package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/dayflow-go-api/internal/middleware"
	"github.com/noah-isme/dayflow-go-api/internal/service"
)

// Handlers groups the API handlers for route registration.
type Handlers struct {
	Auth      *AuthHandler
	WorkLogs  *WorkLogHandler
	Skills    *SkillHandler
	Moods     *MoodHandler
	Analytics *AnalyticsHandler
}

// RegisterRoutes mounts all API routes under the given prefix. The rate
// limiter may be nil, in which case no budgets are enforced.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, authService *service.AuthService, limiter *middleware.RateLimiter) {
	api := r.Group(prefix)
	if limiter != nil {
		api.Use(limiter.General())
	}

	auth := api.Group("/auth")
	if limiter != nil {
		auth.Use(limiter.Auth())
	}
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authService))

	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	workLogs := protected.Group("/work-logs")
	workLogs.GET("", h.WorkLogs.List)
	workLogs.POST("", h.WorkLogs.Create)
	workLogs.GET("/:id", h.WorkLogs.Get)
	workLogs.PUT("/:id", h.WorkLogs.Update)
	workLogs.DELETE("/:id", h.WorkLogs.Delete)

	skills := protected.Group("/skills")
	skills.GET("", h.Skills.List)
	skills.POST("", h.Skills.Create)
	skills.GET("/:id", h.Skills.Get)
	skills.PUT("/:id", h.Skills.Update)
	skills.DELETE("/:id", h.Skills.Delete)

	moods := protected.Group("/moods")
	moods.GET("", h.Moods.List)
	moods.POST("", h.Moods.Create)
	moods.GET("/:id", h.Moods.Get)
	moods.PUT("/:id", h.Moods.Update)
	moods.DELETE("/:id", h.Moods.Delete)

	analytics := protected.Group("/analytics")
	analytics.GET("/dashboard", h.Analytics.Dashboard)
	analytics.GET("/export/work-logs", h.Analytics.ExportWorkLogs)
	analytics.GET("/export/skills", h.Analytics.ExportSkills)
	analytics.GET("/export/moods", h.Analytics.ExportMoods)
}
