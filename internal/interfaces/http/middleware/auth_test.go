package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/infrastructure/auth"
	"caretrack/internal/shared/constants"
	"caretrack/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	jwtService := auth.NewJWTService("test-secret", 15)
	m := NewAuthMiddleware(jwtService, testLogger())

	r := gin.New()
	r.GET("/facilities/:facilityId/rooms", m.RequireAuth(), m.RequireFacilityScope(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"facility_id": c.GetUint(constants.ContextKeyFacilityID),
			"actor_name":  c.GetString(constants.ContextKeyActorName),
		})
	})
	return r, jwtService
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	t.Run("valid token passes and sets scope", func(t *testing.T) {
		r, jwtService := newAuthRouter(t)
		token, err := jwtService.Generate(7, "Dana", "director")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/facilities/7/rooms", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"facility_id":7`)
		assert.Contains(t, w.Body.String(), `"actor_name":"Dana"`)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/facilities/7/rooms", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/facilities/7/rooms", nil)
		req.Header.Set("Authorization", "Token abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		other := auth.NewJWTService("other-secret", 15)
		token, err := other.Generate(7, "Dana", "director")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/facilities/7/rooms", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddleware_RequireFacilityScope(t *testing.T) {
	t.Run("token for another facility is forbidden", func(t *testing.T) {
		r, jwtService := newAuthRouter(t)
		token, err := jwtService.Generate(7, "Dana", "director")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/facilities/8/rooms", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("non-numeric facility id is a bad request", func(t *testing.T) {
		r, jwtService := newAuthRouter(t)
		token, err := jwtService.Generate(7, "Dana", "director")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/facilities/abc/rooms", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
