package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndParse(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret")
	tok, exp, err := m.Generate("user-123", "alice", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestJWTParseExpired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret")
	tok, _, err := m.Generate("u1", "bob", -time.Second)
	require.NoError(t, err)

	_, err = m.Parse(tok)
	require.Error(t, err)
}

func TestJWTParseWrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewJWTManager("right-secret").Generate("u2", "carol", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTManager("wrong-secret").Parse(tok)
	require.Error(t, err)
}

func TestJWTParseMalformed(t *testing.T) {
	t.Parallel()

	_, err := NewJWTManager("k").Parse("not.a.jwt")
	require.Error(t, err)
}
