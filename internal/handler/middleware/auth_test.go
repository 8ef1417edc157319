//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"classroom-reservation/internal/domain/user"
	"classroom-reservation/internal/handler/middleware"
	"classroom-reservation/internal/pkg/jwt"
	"classroom-reservation/internal/usecase"
	"classroom-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("unit-test-secret", "classroom-reservation-test")
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	r.GET("/whoami", auth.RequireAuth(), func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": p.ID().String(), "role": p.Role().String()})
	})
	r.GET("/staff", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleStaff), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, svc
}

func TestRequireAuth(t *testing.T) {
	router, svc := newAuthRouter(t)
	userID := uuid.New()

	t.Run("valid token sets the principal", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleStudent, time.Minute)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["id"])
		assert.Equal(t, "student", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleStudent, -time.Minute)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed by another secret", func(t *testing.T) {
		other := jwt.NewService("someone-else", "classroom-reservation-test")
		token, err := other.GenerateToken(userID, user.RoleAdmin, time.Minute)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	router, svc := newAuthRouter(t)

	cases := []struct {
		role user.Role
		want int
	}{
		{role: user.RoleStudent, want: http.StatusForbidden},
		{role: user.RoleStaff, want: http.StatusNoContent},
		{role: user.RoleAdmin, want: http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.role.String(), func(t *testing.T) {
			token, err := svc.GenerateToken(uuid.New(), tc.role, time.Minute)
			require.NoError(t, err)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, token)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
