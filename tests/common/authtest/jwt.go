//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"classroom-reservation/internal/domain/user"
	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const defaultTokenTTL = 15 * time.Minute

// JWTHelper mints tokens the way the identity service would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, defaultTokenTTL)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, -time.Hour)
	require.NoError(t, err)
	return token
}

// NewStudent returns a fresh user id and a student token for it.
func (h *JWTHelper) NewStudent(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleStudent)
}

func (h *JWTHelper) NewStaff(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleStaff)
}
