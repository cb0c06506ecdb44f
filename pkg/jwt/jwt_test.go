package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, "RegisterSystem", "LoginUser", 42, 1, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, "RegisterSystem", "LoginUser", token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, 1, claims.UserType)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, "RegisterSystem", "LoginUser", 42, 0, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), "RegisterSystem", "LoginUser", token)
	assert.Error(t, err)
}

func TestParseTokenWrongIssuer(t *testing.T) {
	token, err := GenerateToken(secret, "SomeoneElse", "LoginUser", 42, 0, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, "RegisterSystem", "LoginUser", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(secret, "RegisterSystem", "LoginUser", 42, 0, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, "RegisterSystem", "LoginUser", token)
	assert.Error(t, err)
}
