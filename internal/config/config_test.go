// AngelaMos | 2026
// config_test.go

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenTTL(t *testing.T) {
	tests := []struct {
		name      string
		expiresIn string
		want      time.Duration
	}{
		{"blank falls back", "", DefaultTokenTTL},
		{"whitespace falls back", "   ", DefaultTokenTTL},
		{"invalid falls back", "7days", DefaultTokenTTL},
		{"negative falls back", "-1h", DefaultTokenTTL},
		{"valid duration", "24h", 24 * time.Hour},
		{"padded duration", " 12h ", 12 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := JWTConfig{ExpiresIn: tt.expiresIn}
			assert.Equal(t, tt.want, cfg.TokenTTL())
		})
	}
}
