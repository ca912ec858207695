package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

const resetTokenTTL = time.Hour

type AuthService struct {
	users       repositories.UserRepository
	mailer      *Mailer
	frontendURL string
}

func NewAuthService(users repositories.UserRepository, mailer *Mailer, frontendURL string) *AuthService {
	return &AuthService{users: users, mailer: mailer, frontendURL: frontendURL}
}

// Register creates an account. The first account ever registered becomes
// the admin; everyone after that is a regular user.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword.WithDetails(err.Error())
	}

	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, apperrors.NewConflictError("email already registered")
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.PersistError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	count, err := s.users.Count()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		IsAdmin:      count == 0,
	}
	if err := s.users.Create(user); err != nil {
		return nil, apperrors.PersistError(err)
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.PersistError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// ForgotPassword issues a reset token and mails the link. An unknown
// email is treated as success so the endpoint cannot be used to probe
// which addresses have accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.CtxInfo(ctx, "password reset requested for unknown email")
			return nil
		}
		return apperrors.PersistError(err)
	}

	raw, hashed, err := auth.NewResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	expires := time.Now().Add(resetTokenTTL)
	user.PasswordResetToken = hashed
	user.PasswordResetExpiresAt = &expires
	if err := s.users.Update(user); err != nil {
		return apperrors.PersistError(err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, raw)
	if err := s.mailer.SendPasswordReset(user.Email, link); err != nil {
		return apperrors.Wrap(err, apperrors.CodeEmailError, "failed to send reset email", 500)
	}
	return nil
}

func (s *AuthService) ResetPassword(token string, req *dto.ResetPasswordRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword.WithDetails(err.Error())
	}

	user, err := s.users.FindByResetToken(auth.HashResetToken(token))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.PersistError(err)
	}

	if user.PasswordResetExpiresAt == nil || time.Now().After(*user.PasswordResetExpiresAt) {
		return apperrors.ErrInvalidToken.WithDetails("reset token expired")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.PasswordResetToken = ""
	user.PasswordResetExpiresAt = nil
	if err := s.users.Update(user); err != nil {
		return apperrors.PersistError(err)
	}
	return nil
}

func (s *AuthService) GetUser(id string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.PersistError(err)
	}
	return userResponse(user), nil
}

func (s *AuthService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{Token: token, User: *userResponse(user)}, nil
}

func userResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}
