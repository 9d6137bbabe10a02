package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := DefaultConfig("test-secret")

	token, err := GenerateToken("user-1", "asha@example.com", "resident", "kati", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "asha@example.com", claims.Email)
	require.Equal(t, "resident", claims.Role)
	require.Equal(t, "kati", claims.Ward)
	require.Equal(t, "jirani-api", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := DefaultConfig("test-secret")

	token, err := GenerateToken("user-1", "asha@example.com", "resident", "kati", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "wrong-secret")
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := DefaultConfig("test-secret")
	cfg.AccessExpiry = -time.Hour

	token, err := GenerateToken("user-1", "asha@example.com", "resident", "kati", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "test-secret")
	require.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	require.Error(t, err)
}

func TestGenerateTokenNilConfig(t *testing.T) {
	_, err := GenerateToken("user-1", "asha@example.com", "resident", "kati", nil)
	require.Error(t, err)
}
