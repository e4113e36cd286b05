package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"caretrack/internal/shared/errors"
)

// ParseUintParam parses and validates a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "alertId").
// entityName is used in error messages (e.g., "room", "alert").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}

	return uint(id), nil
}

// ParseIntQuery parses an optional integer query parameter with a default
// and an inclusive upper bound. Values below 1 fall back to the default.
func ParseIntQuery(c *gin.Context, name string, def, max int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	if max > 0 && v > max {
		return max
	}
	return v
}
