package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/apperr"
	"github.com/rankmaker/rankmaker/internal/config"
	"github.com/rankmaker/rankmaker/internal/database"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authService(t *testing.T) *AuthService {
	t.Helper()
	setupDB(t)
	cfg := config.Load()
	cfg.JWTSecret = "test-secret"
	return NewAuthService(database.DB, cfg)
}

func registerTestAccount(t *testing.T, svc *AuthService) (*dto.AuthResponse, string) {
	t.Helper()
	email := uuid.NewString() + "@test.local"
	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "u_" + uuid.NewString()[:8],
		Email:    email,
		Password: "hunter22",
	})
	require.NoError(t, err)
	return resp, email
}

func TestRegisterAndLogin(t *testing.T) {
	svc := authService(t)

	resp, email := registerTestAccount(t, svc)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	login, err := svc.Login(&dto.LoginRequest{Email: email, Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(&dto.LoginRequest{Email: email, Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

func TestRegisterRejectsBadUsername(t *testing.T) {
	svc := authService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "no spaces!",
		Email:    uuid.NewString() + "@test.local",
		Password: "hunter22",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := authService(t)

	_, email := registerTestAccount(t, svc)
	_, err := svc.Register(&dto.RegisterRequest{
		Username: "u_" + uuid.NewString()[:8],
		Email:    email,
		Password: "hunter22",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.AlreadyExists, apperr.KindOf(err))
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := authService(t)

	resp, _ := registerTestAccount(t, svc)

	rotated, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// The consumed token cannot be replayed.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc := authService(t)

	resp, _ := registerTestAccount(t, svc)
	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}
