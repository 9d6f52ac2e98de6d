package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskhub/internal/domain/user"
)

func TestTokenIssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret"), time.Hour)

	tok, err := m.Issue("alice")
	require.NoError(t, err)

	subject, err := m.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestTokenVerifyExpired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret"), -1*time.Second)

	tok, err := m.Issue("alice")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestTokenVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager([]byte("right-secret"), time.Hour)
	verifier := NewTokenManager([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestTokenVerifyMalformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("k"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := m.Verify(tok)
		require.ErrorIs(t, err, user.ErrInvalidToken)
	}
}
