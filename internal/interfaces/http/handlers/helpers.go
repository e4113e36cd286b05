package handlers

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/shared/constants"
	"caretrack/internal/shared/errors"
)

// facilityIDFromContext returns the facility scope stamped by the auth
// middleware. Routes behind RequireAuth always carry it.
func facilityIDFromContext(c *gin.Context) (uint, error) {
	facilityID := c.GetUint(constants.ContextKeyFacilityID)
	if facilityID == 0 {
		return 0, errors.NewUnauthorizedError("facility scope missing from request")
	}
	return facilityID, nil
}

// actorNameFromContext returns the authenticated actor's display name, or
// an empty string for tokens without one.
func actorNameFromContext(c *gin.Context) string {
	return c.GetString(constants.ContextKeyActorName)
}
