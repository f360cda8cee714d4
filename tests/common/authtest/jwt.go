//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const DefaultRole = "host"

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID uuid.UUID, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}

// StaffToken issues a token for a fresh staff member with DefaultRole.
func (h *JWTHelper) StaffToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), DefaultRole)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID uuid.UUID, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}
