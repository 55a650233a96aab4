package usecase

import (
	"context"
	"testing"
	"time"

	"practice-site/config"
	"practice-site/internal/delivery/dto"
	"practice-site/internal/repository"
	"practice-site/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthUsecase(t *testing.T) (AuthUsecase, *jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	uc, err := NewAuthUsecase(
		testLogger(),
		config.AdminConfig{Username: "admin", Password: "s3cret"},
		jwtService,
		repository.NewMemorySessionRepository(),
		newTestAudit(),
	)
	require.NoError(t, err)
	return uc, jwtService
}

func TestAuthUsecase_Login(t *testing.T) {
	uc, jwtService := newTestAuthUsecase(t)

	token, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, jwt.AccessToken, claims.TokenType)
}

func TestAuthUsecase_LoginInvalidCredentials(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)
	ctx := context.Background()

	tests := []dto.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "Admin", Password: "s3cret"},
		{Username: "", Password: ""},
	}
	for _, req := range tests {
		_, err := uc.Login(ctx, &req)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "username %q", req.Username)
	}
}

func TestAuthUsecase_LogoutRevokesSession(t *testing.T) {
	sessions := repository.NewMemorySessionRepository()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	uc, err := NewAuthUsecase(testLogger(), config.AdminConfig{Username: "admin", Password: "s3cret"}, jwtService, sessions, newTestAudit())
	require.NoError(t, err)
	ctx := context.Background()

	token, err := uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	live, err := sessions.Exists(ctx, "admin", claims.TokenID)
	require.NoError(t, err)
	assert.True(t, live)

	require.NoError(t, uc.Logout(ctx, "admin", claims.TokenID))

	live, err = sessions.Exists(ctx, "admin", claims.TokenID)
	require.NoError(t, err)
	assert.False(t, live)
}
