package routes

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/interfaces/http/handlers"
)

type DocumentRouteConfig struct {
	DocumentHandler *handlers.DocumentHandler
}

// SetupDocumentRoutes registers document routes on a facility-scoped group.
func SetupDocumentRoutes(facility *gin.RouterGroup, config *DocumentRouteConfig) {
	documents := facility.Group("/documents")
	{
		documents.POST("", config.DocumentHandler.CreateDocument)
		documents.GET("", config.DocumentHandler.ListDocuments)

		documents.PUT("/:id/file", config.DocumentHandler.AttachFile)
		documents.PUT("/:id", config.DocumentHandler.UpdateDocument)
	}
}
