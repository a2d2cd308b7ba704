//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/jwt"
	"fieldbook/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity provider would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	service, err := jwt.NewService(cfg.Secret, cfg.Issuer)
	require.NoError(t, err)
	return &JWTHelper{service: service}
}

func (h *JWTHelper) GenerateToken(t *testing.T, actor shared.Actor) string {
	t.Helper()
	token, err := h.service.GenerateToken(jwt.Claims{
		UserID: actor.UserID,
		Email:  actor.Email,
		Name:   actor.Name,
		Role:   actor.Role,
	}, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, actor shared.Actor) string {
	t.Helper()
	token, err := h.service.GenerateToken(jwt.Claims{UserID: actor.UserID, Role: actor.Role}, -time.Minute)
	require.NoError(t, err)
	return token
}
