package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, "admin@example.com", TypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Username)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestParseToken_Rejects(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken(secret, "admin", TypeAccess, time.Minute)
		require.NoError(t, err)
		_, err = ParseToken([]byte("other"), TypeAccess, token)
		assert.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		token, err := GenerateToken(secret, "admin", "refresh", time.Minute)
		require.NoError(t, err)
		_, err = ParseToken(secret, TypeAccess, token)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateToken(secret, "admin", TypeAccess, -time.Minute)
		require.NoError(t, err)
		_, err = ParseToken(secret, TypeAccess, token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken(secret, TypeAccess, "not-a-token")
		assert.Error(t, err)
	})
}

func TestShouldRotate(t *testing.T) {
	token, err := GenerateToken(secret, "admin", TypeAccess, 30*time.Second)
	require.NoError(t, err)
	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)

	assert.True(t, ShouldRotate(claims, time.Minute))
	assert.False(t, ShouldRotate(claims, time.Second))
	assert.False(t, ShouldRotate(&Claims{}, time.Minute))
}
