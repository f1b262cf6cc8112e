package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	tok, err := Issue("sekret", 7, "user@example.com", "customer", 24)
	require.NoError(t, err)

	claims, err := ParseAuth("Bearer "+tok, "sekret")
	require.NoError(t, err)
	require.EqualValues(t, 7, claims["sub"])
	require.Equal(t, "user@example.com", claims["email"])
	require.Equal(t, "customer", claims["role"])
	require.NotEmpty(t, claims["jti"])

	// every token carries a fresh jti so logout can deny it individually
	tok2, err := Issue("sekret", 7, "user@example.com", "customer", 24)
	require.NoError(t, err)
	claims2, err := ParseAuth(tok2, "sekret")
	require.NoError(t, err)
	require.NotEqual(t, claims["jti"], claims2["jti"])
}

func TestParseAuth_WrongSecret(t *testing.T) {
	tok, err := Issue("sekret", 7, "user@example.com", "customer", 24)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+tok, "other")
	require.Error(t, err)
}

func TestParseAuth_Expired(t *testing.T) {
	tok, err := Issue("sekret", 7, "user@example.com", "customer", -1)
	require.NoError(t, err)

	_, err = ParseAuth(tok, "sekret")
	require.Error(t, err)
}

func TestParseAuth_Empty(t *testing.T) {
	_, err := ParseAuth("", "sekret")
	require.Error(t, err)
	_, err = ParseAuth("Bearer ", "sekret")
	require.Error(t, err)
}
