package routes

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/interfaces/http/handlers"
)

type RoomRouteConfig struct {
	RoomHandler *handlers.RoomHandler
}

// SetupRoomRoutes registers room management routes on a facility-scoped group.
func SetupRoomRoutes(facility *gin.RouterGroup, config *RoomRouteConfig) {
	rooms := facility.Group("/rooms")
	{
		rooms.POST("", config.RoomHandler.CreateRoom)
		rooms.GET("", config.RoomHandler.ListRooms)

		// Specific action endpoints come before the generic :id routes.
		rooms.POST("/:id/archive", config.RoomHandler.ArchiveRoom)

		rooms.PUT("/:id", config.RoomHandler.UpdateRoom)
	}
}
