package routes

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/interfaces/http/handlers"
)

type DailyOpsRouteConfig struct {
	IncidentHandler   *handlers.IncidentHandler
	MedicationHandler *handlers.MedicationHandler
	ChecklistHandler  *handlers.ChecklistHandler
}

// SetupDailyOpsRoutes registers incident, medication, and checklist routes on
// a facility-scoped group.
func SetupDailyOpsRoutes(facility *gin.RouterGroup, config *DailyOpsRouteConfig) {
	incidents := facility.Group("/incidents")
	{
		incidents.POST("", config.IncidentHandler.CreateIncident)
		incidents.GET("", config.IncidentHandler.ListIncidents)
		incidents.POST("/:id/parent-notified", config.IncidentHandler.MarkParentNotified)
	}

	medications := facility.Group("/medication-logs")
	{
		medications.POST("", config.MedicationHandler.CreateLog)
		medications.GET("", config.MedicationHandler.ListLogs)
	}

	checklists := facility.Group("/checklists")
	{
		checklists.POST("", config.ChecklistHandler.CreateChecklist)
		checklists.GET("/today", config.ChecklistHandler.ListToday)

		checklists.POST("/:id/complete", config.ChecklistHandler.CompleteChecklist)
		checklists.PUT("/:id", config.ChecklistHandler.UpdateChecklist)
	}
}
