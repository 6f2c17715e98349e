package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret-a", time.Hour)

	token, exp, err := m.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.UserID)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestTokenExpiredRejected(t *testing.T) {
	m := NewTokenManager("secret-a", -time.Minute)

	token, _, err := m.Issue("user-42")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.Error(t, err)
}
