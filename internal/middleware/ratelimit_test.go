// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter_EnforcesWindow(t *testing.T) {
	limiter := newLocalLimiter()
	limit := redis_rate.Limit{
		Rate:   10,
		Burst:  10,
		Period: time.Minute,
	}

	for i := 0; i < 10; i++ {
		res, err := limiter.allow("login:203.0.113.9", limit)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Allowed, "request %d should be allowed", i+1)
	}

	res, err := limiter.allow("login:203.0.113.9", limit)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Allowed, "11th request in window should be denied")
	assert.Positive(t, res.RetryAfter)
}

func TestLocalLimiter_KeysAreIndependent(t *testing.T) {
	limiter := newLocalLimiter()
	limit := redis_rate.Limit{
		Rate:   10,
		Burst:  10,
		Period: time.Minute,
	}

	for i := 0; i < 10; i++ {
		_, err := limiter.allow("login:203.0.113.9", limit)
		require.NoError(t, err)
	}

	res, err := limiter.allow("login:198.51.100.7", limit)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Allowed, "a different client has its own window")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.9:51234",
			want:       "203.0.113.9",
		},
		{
			name:       "forwarded-for takes last hop",
			remoteAddr: "10.0.0.1:80",
			xff:        "198.51.100.7, 203.0.113.9",
			want:       "203.0.113.9",
		},
		{
			name:       "real-ip fallback",
			remoteAddr: "10.0.0.1:80",
			xri:        "198.51.100.7",
			want:       "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/auth/login", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
