// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/noteplane/internal/core"
	"github.com/carterperez-dev/noteplane/internal/tenant"
	"github.com/carterperez-dev/noteplane/internal/user"
)

const (
	acmeID  = "3b241101-e2bb-4255-8caf-4136c566a962"
	aliceID = "8f14e45f-ceea-467f-abce-0d4b1b5c4e1a"
)

type fakeUserStore struct {
	byEmail map[string]*user.User
}

func (f *fakeUserStore) GetByEmail(
	_ context.Context,
	email string,
) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	return u, nil
}

func (f *fakeUserStore) UpdatePassword(
	_ context.Context,
	_, _ string,
) error {
	return nil
}

type fakeTenantStore struct {
	byID map[string]*tenant.Tenant
}

func (f *fakeTenantStore) GetByID(
	_ context.Context,
	id string,
) (*tenant.Tenant, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("get tenant: %w", core.ErrNotFound)
	}
	return t, nil
}

func newLoginService(t *testing.T) *Service {
	t.Helper()

	hash, err := core.HashPassword("password")
	require.NoError(t, err)

	users := &fakeUserStore{byEmail: map[string]*user.User{
		"admin@acme.test": {
			ID:           aliceID,
			Email:        "admin@acme.test",
			PasswordHash: hash,
			Role:         user.RoleAdmin,
			Plan:         user.PlanPro,
			TenantID:     acmeID,
		},
	}}
	tenants := &fakeTenantStore{byID: map[string]*tenant.Tenant{
		acmeID: {ID: acmeID, Slug: "acme", Name: "Acme Corp", Plan: tenant.PlanFree},
	}}

	jwtManager, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(users, tenants, jwtManager, logger)
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := newLoginService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "password")
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(ctx, "admin@acme.test", "")
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newLoginService(t)

	_, err := svc.Login(context.Background(), "nobody@acme.test", "password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newLoginService(t)

	_, err := svc.Login(context.Background(), "admin@acme.test", "hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	svc := newLoginService(t)

	resp, err := svc.Login(context.Background(), "admin@acme.test", "password")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, aliceID, resp.User.ID)
	assert.Equal(t, "admin@acme.test", resp.User.Email)
	assert.Equal(t, user.RoleAdmin, resp.User.Role)
	assert.Equal(t, user.PlanPro, resp.User.Plan)
	assert.Equal(t, "acme", resp.Tenant.Slug)
	assert.Equal(t, tenant.PlanFree, resp.Tenant.Plan)

	claims, err := svc.jwt.VerifyToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, aliceID, claims.UserID)
	assert.Equal(t, acmeID, claims.TenantID)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}
