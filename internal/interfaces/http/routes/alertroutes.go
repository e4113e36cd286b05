package routes

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/interfaces/http/handlers"
)

type AlertRouteConfig struct {
	AlertHandler        *handlers.AlertHandler
	GenerateRateLimiter gin.HandlerFunc
}

// SetupAlertRoutes registers alert routes on a facility-scoped group. The
// generation endpoint carries its own rate limit since a pass touches every
// certification, spot-check, and document row for the facility.
func SetupAlertRoutes(facility *gin.RouterGroup, config *AlertRouteConfig) {
	alerts := facility.Group("/alerts")
	{
		alerts.GET("", config.AlertHandler.ListActive)
		alerts.GET("/summary", config.AlertHandler.Summary)

		if config.GenerateRateLimiter != nil {
			alerts.POST("/generate", config.GenerateRateLimiter, config.AlertHandler.GenerateAlerts)
		} else {
			alerts.POST("/generate", config.AlertHandler.GenerateAlerts)
		}

		alerts.PATCH("/:id/acknowledge", config.AlertHandler.Acknowledge)
		alerts.PATCH("/:id/resolve", config.AlertHandler.Resolve)
		alerts.GET("/:id/history", config.AlertHandler.History)
	}
}
