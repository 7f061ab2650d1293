// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/noteplane/internal/config"
	"github.com/carterperez-dev/noteplane/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:    "test-secret-at-least-32-bytes-long!!",
		ExpiresIn: "1h",
		Issuer:    "noteplane",
		Audience:  "noteplane-api",
	}
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = "   "

	_, err := NewJWTManager(cfg)
	require.Error(t, err)
}

func TestNewJWTManager_BlankExpiryFallsBack(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpiresIn = "   "

	m, err := NewJWTManager(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTokenTTL, m.TokenTTL())
}

func TestCreateAndVerifyToken(t *testing.T) {
	m, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)

	token, err := m.CreateToken(SessionClaims{
		UserID:   "8f14e45f-ceea-467f-abce-0d4b1b5c4e1a",
		TenantID: "3b241101-e2bb-4255-8caf-4136c566a962",
		Role:     "member",
		Plan:     "free",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "8f14e45f-ceea-467f-abce-0d4b1b5c4e1a", claims.UserID)
	assert.Equal(t, "3b241101-e2bb-4255-8caf-4136c566a962", claims.TenantID)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, "free", claims.Plan)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	m1, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-secret-value!"
	m2, err := NewJWTManager(otherCfg)
	require.NoError(t, err)

	token, err := m1.CreateToken(SessionClaims{
		UserID:   "8f14e45f-ceea-467f-abce-0d4b1b5c4e1a",
		TenantID: "3b241101-e2bb-4255-8caf-4136c566a962",
		Role:     "member",
		Plan:     "free",
	})
	require.NoError(t, err)

	_, err = m2.VerifyToken(context.Background(), token)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyToken_Expired(t *testing.T) {
	m, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)

	now := time.Now()
	expired, err := jwt.NewBuilder().
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject("8f14e45f-ceea-467f-abce-0d4b1b5c4e1a").
		IssuedAt(now.Add(-2 * time.Hour)).
		Expiration(now.Add(-time.Hour)).
		Claim("tenant_id", "3b241101-e2bb-4255-8caf-4136c566a962").
		Claim("role", "member").
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(expired, jwt.WithKey(jwa.HS256(), m.key))
	require.NoError(t, err)

	_, err = m.VerifyToken(context.Background(), string(signed))
	require.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyToken_MissingTenantClaimLeftEmpty(t *testing.T) {
	m, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)

	now := time.Now()
	noTenant, err := jwt.NewBuilder().
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject("8f14e45f-ceea-467f-abce-0d4b1b5c4e1a").
		IssuedAt(now).
		Expiration(now.Add(time.Hour)).
		Claim("role", "member").
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(noTenant, jwt.WithKey(jwa.HS256(), m.key))
	require.NoError(t, err)

	claims, err := m.VerifyToken(context.Background(), string(signed))
	require.NoError(t, err)
	assert.Empty(t, claims.TenantID)
}

func TestVerifyToken_Garbage(t *testing.T) {
	m, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)

	_, err = m.VerifyToken(context.Background(), "not.a.token")
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}
