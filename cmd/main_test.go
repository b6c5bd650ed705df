package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghost-labs/ghost-auth/config"
)

func TestCORSConfigDefaultsToAllowAll(t *testing.T) {
	t.Parallel()

	// The development defaults leave CORS_ALLOWED_ORIGINS unset; the
	// resulting policy must still be one cors.New accepts without panicking.
	cfg := &config.Config{}
	c := corsConfig(cfg.CORSOrigins())
	require.True(t, c.AllowAllOrigins)
	require.False(t, c.AllowCredentials)
	require.NoError(t, c.Validate())
}

func TestCORSConfigWithOrigins(t *testing.T) {
	t.Parallel()

	c := corsConfig([]string{"https://app.example.com"})
	require.False(t, c.AllowAllOrigins)
	require.Equal(t, []string{"https://app.example.com"}, c.AllowOrigins)
	require.True(t, c.AllowCredentials)
	require.NoError(t, c.Validate())
}
