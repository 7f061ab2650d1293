// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/noteplane/internal/config"
	"github.com/carterperez-dev/noteplane/internal/core"
	"github.com/carterperez-dev/noteplane/internal/middleware"
)

// JWTManager signs and verifies the session tokens that carry identity
// claims: subject, tenant, role, and plan at login time. HS256 over the
// configured secret; tokens are self-contained and never persisted.
type JWTManager struct {
	key    jwk.Key
	ttl    time.Duration
	config config.JWTConfig
}

// NewJWTManager fails when no signing secret is configured. A missing secret
// is a deployment error, so it is rejected at startup rather than per request.
func NewJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, fmt.Errorf("jwt: signing secret is not configured")
	}

	key, err := jwk.Import([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &JWTManager{
		key:    key,
		ttl:    cfg.TokenTTL(),
		config: cfg,
	}, nil
}

type SessionClaims struct {
	UserID   string
	TenantID string
	Role     string
	Plan     string
}

func (m *JWTManager) CreateToken(claims SessionClaims) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject(claims.UserID).
		IssuedAt(now).
		Expiration(now.Add(m.ttl)).
		NotBefore(now).
		Claim("tenant_id", claims.TenantID).
		Claim("role", claims.Role).
		Claim("plan", claims.Plan).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// VerifyToken returns claims only for a token signed under the configured
// secret and still inside its validity window. A missing tenant_id claim is
// left empty for the auth gate to reject; that failure mode is reported
// separately from a bad signature.
func (m *JWTManager) VerifyToken(
	ctx context.Context,
	tokenString string,
) (*middleware.SessionClaims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var role string
	if err := token.Get("role", &role); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing role claim: %w",
			core.ErrTokenInvalid,
		)
	}

	var tenantID string
	//nolint:errcheck // absent tenant_id stays empty; the auth gate rejects it
	_ = token.Get("tenant_id", &tenantID)

	var plan string
	if err := token.Get("plan", &plan); err != nil || plan == "" {
		plan = "free"
	}

	return &middleware.SessionClaims{
		UserID:   subject,
		TenantID: tenantID,
		Role:     role,
		Plan:     plan,
	}, nil
}

func (m *JWTManager) TokenTTL() time.Duration {
	return m.ttl
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}
