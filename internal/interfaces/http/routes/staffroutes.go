package routes

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/interfaces/http/handlers"
)

type StaffRouteConfig struct {
	StaffHandler *handlers.StaffHandler
}

// SetupStaffRoutes registers staff and certification routes on a
// facility-scoped group.
func SetupStaffRoutes(facility *gin.RouterGroup, config *StaffRouteConfig) {
	staff := facility.Group("/staff")
	{
		staff.POST("", config.StaffHandler.CreateStaff)
		staff.GET("", config.StaffHandler.ListStaff)

		staff.POST("/:id/deactivate", config.StaffHandler.DeactivateStaff)
		staff.POST("/:id/certifications", config.StaffHandler.AddCertification)
		staff.GET("/:id/certifications", config.StaffHandler.ListCertifications)

		staff.PUT("/:id", config.StaffHandler.UpdateStaff)
	}

	certifications := facility.Group("/certifications")
	{
		certifications.POST("/:certId/renew", config.StaffHandler.RenewCertification)
	}
}
