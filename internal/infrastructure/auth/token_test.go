package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	authority := NewTokenAuthority("test-secret")

	token, err := authority.Generate("user-1", "user@example.com")
	assert.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := authority.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Greater(t, claims.Exp, claims.Iat)
}

func TestTokenTampering(t *testing.T) {
	authority := NewTokenAuthority("test-secret")

	token, err := authority.Generate("user-1", "user@example.com")
	assert.NoError(t, err)

	t.Run("Tampered signature", func(t *testing.T) {
		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

		_, err := authority.Validate(tampered)
		assert.Error(t, err)
	})

	t.Run("Tampered claims", func(t *testing.T) {
		parts := strings.Split(token, ".")
		other, _ := NewTokenAuthority("test-secret").Generate("user-2", "other@example.com")
		otherParts := strings.Split(other, ".")

		// Claims from one token with the signature of another
		mixed := parts[0] + "." + otherParts[1] + "." + parts[2]
		_, err := authority.Validate(mixed)
		assert.Error(t, err)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewTokenAuthority("different-secret")
		_, err := other.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Malformed token", func(t *testing.T) {
		_, err := authority.Validate("not-a-token")
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.NoError(t, VerifyPassword(hash, "secret-password"))
	assert.Error(t, VerifyPassword(hash, "wrong-password"))
}
