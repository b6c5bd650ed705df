package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func resolveIP(t *testing.T, xff string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("real_ip")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	if xff != "" {
		req.Header.Set("X-Forwarded-For", xff)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestRealIPPrefersForwardedFor(t *testing.T) {
	require.Equal(t, "198.51.100.9", resolveIP(t, "198.51.100.9, 10.0.0.1"))
}

func TestRealIPFallsBackOnGarbageHeader(t *testing.T) {
	require.Equal(t, "203.0.113.7", resolveIP(t, "not-an-ip"))
}

func TestRealIPWithoutHeader(t *testing.T) {
	require.Equal(t, "203.0.113.7", resolveIP(t, ""))
}
