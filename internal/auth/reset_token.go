package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// NewResetToken generates a password-reset token. The raw token is mailed
// to the user; only its sha256 hex digest is stored, so a database leak
// does not expose usable tokens.
func NewResetToken() (raw string, hashed string, err error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, HashResetToken(raw), nil
}

// HashResetToken returns the stored form of a raw reset token.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
