package auth

import (
	"testing"

	"portfolio_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", TTL: 60},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", true)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("user-1", false)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}

func TestResetTokenHashing(t *testing.T) {
	raw, hashed, err := NewResetToken()
	require.NoError(t, err)

	assert.NotEmpty(t, raw)
	assert.NotEqual(t, raw, hashed)
	assert.Equal(t, hashed, HashResetToken(raw), "lookup digest must match the stored one")

	_, otherHashed, err := NewResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, hashed, otherHashed)
}
