package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	require.NotEqual(t, "Passw0rd!", hash)

	require.True(t, CheckPassword(hash, "Passw0rd!"))
	require.False(t, CheckPassword(hash, "passw0rd!"))
	require.False(t, CheckPassword(hash, ""))
}

func TestPasswordHashesDiffer(t *testing.T) {
	t.Parallel()

	// A fresh salt per call means two hashes of the same plaintext never
	// match, yet both verify.
	h1, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	h2, err := HashPassword("Passw0rd!")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.True(t, CheckPassword(h1, "Passw0rd!"))
	require.True(t, CheckPassword(h2, "Passw0rd!"))
}
