package models

import "time"

// User is an account able to sign in. Only admins may mutate content;
// the first registered account becomes the admin.
type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsAdmin      bool   `json:"isAdmin"`

	// Password reset: only the sha256 digest of the token is stored.
	PasswordResetToken     string     `json:"-"`
	PasswordResetExpiresAt *time.Time `json:"-"`
}
