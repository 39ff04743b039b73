package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
	"github.com/jobhubs/backoffice/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := auth.HashPassword("azerty123@")
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "jobhubs-backoffice",
	})
	return NewAuthService("admin", hash, jwtService)
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "azerty123@"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Positive(t, resp.ExpiresIn)

	claims, err := svc.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthServiceLoginUnknownUsername(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{Username: "root", Password: "azerty123@"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
