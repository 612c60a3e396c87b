//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"agenda-engine/internal/pkg/config"
	"agenda-engine/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(duration time.Duration) *jwt.Service {
	return jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration, h.cfg.StateTTL)
}

func (h *JWTHelper) OwnerToken(t *testing.T, slug string) string {
	t.Helper()
	token, err := h.service(h.cfg.Duration).GenerateToken(slug)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ExpiredOwnerToken(t *testing.T, slug string) string {
	t.Helper()
	token, err := h.service(time.Millisecond).GenerateToken(slug)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// StateToken mints an OAuth state that the callback accepts for slug.
func (h *JWTHelper) StateToken(t *testing.T, slug string) string {
	t.Helper()
	state, err := h.service(h.cfg.Duration).SignState(slug)
	require.NoError(t, err)
	return state
}
