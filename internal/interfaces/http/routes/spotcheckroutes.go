package routes

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/interfaces/http/handlers"
)

type SpotCheckRouteConfig struct {
	SpotCheckHandler *handlers.SpotCheckHandler
}

// SetupSpotCheckRoutes registers ratio spot-check routes on a facility-scoped
// group.
func SetupSpotCheckRoutes(facility *gin.RouterGroup, config *SpotCheckRouteConfig) {
	spotChecks := facility.Group("/ratio-checks")
	{
		spotChecks.POST("", config.SpotCheckHandler.CreateSpotCheck)
		spotChecks.GET("/today", config.SpotCheckHandler.ListToday)
		spotChecks.GET("/history", config.SpotCheckHandler.History)
		spotChecks.GET("/reminder-status", config.SpotCheckHandler.ReminderStatus)
	}
}
