//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	stdhttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"classroom-reservation/internal/domain/user"
	"classroom-reservation/internal/handler/middleware"
	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/pkg/jwt"
	"classroom-reservation/internal/pkg/logger"
	"classroom-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(t *testing.T, buf *bytes.Buffer) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.LogConfig{Level: "debug", TimeZone: "UTC", TimeFormat: time.RFC3339}
	svc := jwt.NewService("unit-test-secret", "classroom-reservation-test")
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger.NewWithWriter(buf, cfg, true)))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	r.GET("/secure", auth.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, svc
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestRequestLogger(t *testing.T) {
	t.Run("generates a request id when none is sent", func(t *testing.T) {
		var buf bytes.Buffer
		router, _ := newLoggedRouter(t, &buf)

		rec := stdhttptest.NewRecorder()
		router.ServeHTTP(rec, stdhttptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())

		entry := lastEntry(t, &buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, id, entry["request_id"])
		assert.Equal(t, "/ping", entry["route"])
		assert.InDelta(t, 200, entry["status_code"], 0)
	})

	t.Run("keeps a caller supplied request id", func(t *testing.T) {
		var buf bytes.Buffer
		router, _ := newLoggedRouter(t, &buf)

		req := stdhttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "gateway-42")
		rec := stdhttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "gateway-42", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "gateway-42", lastEntry(t, &buf)["request_id"])
	})

	t.Run("logs the authenticated principal", func(t *testing.T) {
		var buf bytes.Buffer
		router, svc := newLoggedRouter(t, &buf)
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, user.RoleStaff, time.Minute)
		require.NoError(t, err)

		req := stdhttptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := stdhttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		entry := lastEntry(t, &buf)
		assert.Equal(t, userID.String(), entry["user_id"])
		assert.Equal(t, "staff", entry["role"])
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		var buf bytes.Buffer
		router, _ := newLoggedRouter(t, &buf)

		rec := stdhttptest.NewRecorder()
		router.ServeHTTP(rec, stdhttptest.NewRequest(http.MethodGet, "/secure", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		entry := lastEntry(t, &buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.NotContains(t, entry, "user_id")
	})
}
