package services

import (
	"testing"
	"time"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users *fakeUserRepo) *AuthService {
	config.AppConfig = &config.Config{
		JWT:         config.JWTConfig{Secret: "test-secret", TTL: 60},
		FrontendURL: "http://localhost:3000",
	}
	return NewAuthService(users, NewMailer(config.EmailConfig{}), "http://localhost:3000")
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name: "Owner", Email: "owner@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)
	assert.NotEmpty(t, resp.Token)

	second, err := svc.Register(&dto.RegisterRequest{
		Name: "Guest", Email: "guest@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.False(t, second.User.IsAdmin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		Name: "B", Email: "a@example.com", Password: "secret1",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))

	// Unknown email gets the same answer as a bad password.
	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestResetPasswordWithValidToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	raw, hashed, err := auth.NewResetToken()
	require.NoError(t, err)

	user, err := users.FindByID(resp.User.ID)
	require.NoError(t, err)
	expires := time.Now().Add(time.Hour)
	user.PasswordResetToken = hashed
	user.PasswordResetExpiresAt = &expires
	require.NoError(t, users.Update(user))

	err = svc.ResetPassword(raw, &dto.ResetPasswordRequest{Password: "newpass1"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "newpass1"})
	require.NoError(t, err)

	// The token is single-use.
	err = svc.ResetPassword(raw, &dto.ResetPasswordRequest{Password: "another1"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidToken))
}

func TestResetPasswordExpiredToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	raw, hashed, err := auth.NewResetToken()
	require.NoError(t, err)

	user, err := users.FindByID(resp.User.ID)
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	user.PasswordResetToken = hashed
	user.PasswordResetExpiresAt = &expired
	require.NoError(t, users.Update(user))

	err = svc.ResetPassword(raw, &dto.ResetPasswordRequest{Password: "newpass1"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidToken))
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "123",
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrWeakPassword))
}
