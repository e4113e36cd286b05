package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"caretrack/internal/infrastructure/auth"
	"caretrack/internal/shared/constants"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the facility scope and
// actor name on the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyFacilityID, claims.FacilityID)
		c.Set(constants.ContextKeyActorName, claims.ActorName)
		c.Set(constants.ContextKeyUserRole, claims.Role)

		c.Next()
	}
}

// RequireFacilityScope rejects requests whose :facilityId path parameter
// does not match the token's facility claim. Mounted after RequireAuth.
func (m *AuthMiddleware) RequireFacilityScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		facilityID, err := utils.ParseUintParam(c, "facilityId", "facility")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		claimed := c.GetUint(constants.ContextKeyFacilityID)
		if claimed == 0 || claimed != facilityID {
			m.logger.Warnw("facility scope mismatch",
				"token_facility_id", claimed,
				"path_facility_id", facilityID,
			)
			utils.ErrorResponse(c, http.StatusForbidden, "access to this facility is not allowed")
			c.Abort()
			return
		}

		c.Next()
	}
}
