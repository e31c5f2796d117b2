package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)

	t.Run("generate and validate access token", func(t *testing.T) {
		token, err := manager.GenerateToken("user-1", "demo", "demo@float.dev")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "demo", claims.Username)
		assert.Equal(t, "demo@float.dev", claims.Email)
	})

	t.Run("refresh token carries only the user id", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Empty(t, claims.Username)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewJWTManager("other-secret", 15*time.Minute, 24*time.Hour)
		token, err := other.GenerateToken("user-1", "demo", "demo@float.dev")
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)
		token, err := expired.GenerateToken("user-1", "demo", "demo@float.dev")
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := manager.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
