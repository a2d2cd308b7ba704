//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"fieldbook/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, secret, issuer string) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewService(secret, issuer)
	require.NoError(t, err)
	return svc
}

func TestNewService_RejectsBlankSecret(t *testing.T) {
	for _, secret := range []string{"", "   "} {
		svc, err := jwt.NewService(secret, "")
		assert.ErrorIs(t, err, jwt.ErrEmptySecret)
		assert.Nil(t, svc)
	}
}

func TestService_ValidateToken(t *testing.T) {
	svc := newService(t, "secret", "https://id.example.com/")

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateToken(jwt.Claims{UserID: "auth0|u1", Email: "u1@example.com", Name: "Nok", Role: "member"}, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "auth0|u1", claims.UserID)
		assert.Equal(t, "u1@example.com", claims.Email)
		assert.Equal(t, "member", claims.Role)
	})

	t.Run("subject used when user_id missing", func(t *testing.T) {
		token, err := svc.GenerateToken(jwt.Claims{RegisteredClaims: gojwt.RegisteredClaims{Subject: "sub-1"}}, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "sub-1", claims.UserID)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateToken(jwt.Claims{UserID: "u1"}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := newService(t, "other", "https://id.example.com/").GenerateToken(jwt.Claims{UserID: "u1"}, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := newService(t, "secret", "https://evil.example.com/").GenerateToken(jwt.Claims{UserID: "u1"}, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
