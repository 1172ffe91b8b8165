package auth

import (
	"testing"
	"time"

	"blogapi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.Load()

	token, err := GenerateToken(42, "alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.Load()

	token, err := GenerateTokenWithExpiry(42, "alice", "alice@example.com", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.Load()

	token, err := GenerateToken(42, "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "secret123"))
	assert.Error(t, CheckPasswordHash(hash, "wrong-password"))
}
