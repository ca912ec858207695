package app

import (
	"errors"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"

	"gorm.io/gorm"
)

// seedFirstAdmin creates the admin account from configuration when the
// user table is empty. Normally the first registration becomes the
// admin; this covers deployments where registration is behind the
// frontend and the owner wants a known account from the start.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	users := repositories.NewUserRepository(db)

	count, err := users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := users.FindByEmail(cfg.FirstAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Admin",
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := users.Create(admin); err != nil {
		return err
	}

	logger.Info("seeded admin account", "email", cfg.FirstAdminEmail)
	return nil
}
