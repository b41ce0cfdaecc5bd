package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "correct-horse", hash)

	require.True(t, VerifyPassword(hash, "correct-horse"))
	require.False(t, VerifyPassword(hash, "wrong-horse"))
	require.False(t, VerifyPassword("not-a-hash", "correct-horse"))
}

func TestAccessTokenClaims(t *testing.T) {
	tok, err := NewAccessToken("secret", 42, "pema@example.bt", "ADMIN", 15)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), tok.Exp, 5*time.Second)

	parsed, err := jwt.Parse(tok.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, float64(42), claims["sub"])
	require.Equal(t, "pema@example.bt", claims["email"])
	require.Equal(t, "ADMIN", claims["role"])
}

func TestRefreshTokenHashing(t *testing.T) {
	a, err := NewRefreshToken(7)
	require.NoError(t, err)
	b, err := NewRefreshToken(7)
	require.NoError(t, err)

	require.Len(t, a.Raw, 96) // 48 random bytes, hex encoded
	require.NotEqual(t, a.Raw, b.Raw)

	// Hashing is deterministic and never the identity.
	require.Equal(t, HashRefreshRaw(a.Raw), HashRefreshRaw(a.Raw))
	require.NotEqual(t, HashRefreshRaw(a.Raw), HashRefreshRaw(b.Raw))
	require.NotEqual(t, a.Raw, HashRefreshRaw(a.Raw))
}
