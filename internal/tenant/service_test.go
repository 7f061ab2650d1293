// AngelaMos | 2026
// service_test.go

package tenant

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/noteplane/internal/core"
	"github.com/carterperez-dev/noteplane/internal/user"
)

const (
	acmeID       = "3b241101-e2bb-4255-8caf-4136c566a962"
	acmeAdminID  = "8f14e45f-ceea-467f-abce-0d4b1b5c4e1a"
	acmeMemberID = "c4ca4238-a0b9-4382-8dcc-509a6f75849b"
	otherAdminID = "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee"
)

type fakeTenantRepo struct {
	tenants map[string]*Tenant // keyed by id
}

func (f *fakeTenantRepo) Create(_ context.Context, t *Tenant) error {
	f.tenants[t.ID] = t
	return nil
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (*Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, fmt.Errorf("get tenant: %w", core.ErrNotFound)
	}
	return t, nil
}

func (f *fakeTenantRepo) GetByIDAndSlug(
	_ context.Context,
	id, slug string,
) (*Tenant, error) {
	t, ok := f.tenants[id]
	if !ok || t.Slug != slug {
		return nil, fmt.Errorf("get tenant by slug: %w", core.ErrNotFound)
	}
	return t, nil
}

func (f *fakeTenantRepo) UpdatePlan(
	ctx context.Context,
	id, slug, plan string,
) (*Tenant, error) {
	t, err := f.GetByIDAndSlug(ctx, id, slug)
	if err != nil {
		return nil, err
	}
	t.Plan = plan
	return t, nil
}

func (f *fakeTenantRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.tenants[id]
	return ok, nil
}

type fakeUserStore struct {
	users map[string]*user.User // keyed by id
}

func (f *fakeUserStore) Create(_ context.Context, u *user.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetByIDInTenant(
	_ context.Context,
	id, tenantID string,
) (*user.User, error) {
	u, ok := f.users[id]
	if !ok || u.TenantID != tenantID {
		return nil, fmt.Errorf("get tenant user: %w", core.ErrNotFound)
	}
	return u, nil
}

func (f *fakeUserStore) ListByTenant(
	_ context.Context,
	tenantID string,
) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.TenantID == tenantID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) UpdatePlan(
	ctx context.Context,
	id, tenantID, plan string,
) (*user.User, error) {
	u, err := f.GetByIDInTenant(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	u.Plan = plan
	return u, nil
}

func (f *fakeUserStore) ExistsByEmail(
	_ context.Context,
	email string,
) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCascader struct {
	calls [][2]string // (tenantID, userID)
	users *fakeUserStore
}

func (f *fakeCascader) DeleteUserWithNotes(
	_ context.Context,
	tenantID, userID string,
) error {
	f.calls = append(f.calls, [2]string{tenantID, userID})
	delete(f.users.users, userID)
	return nil
}

func newTestService() (*Service, *fakeUserStore, *fakeCascader) {
	tenants := &fakeTenantRepo{tenants: map[string]*Tenant{
		acmeID: {ID: acmeID, Slug: "acme", Name: "Acme Corp", Plan: PlanFree},
	}}
	users := &fakeUserStore{users: map[string]*user.User{
		acmeAdminID: {
			ID:       acmeAdminID,
			Email:    "admin@acme.test",
			Role:     user.RoleAdmin,
			Plan:     user.PlanPro,
			TenantID: acmeID,
		},
		acmeMemberID: {
			ID:       acmeMemberID,
			Email:    "user@acme.test",
			Role:     user.RoleMember,
			Plan:     user.PlanFree,
			TenantID: acmeID,
		},
	}}
	cascade := &fakeCascader{users: users}
	return NewService(tenants, users, cascade), users, cascade
}

func TestUpgradePlan_NormalizesToPro(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	upgraded, err := svc.UpgradePlan(ctx, acmeID, "acme", "enterprise")
	require.NoError(t, err)
	assert.Equal(t, PlanPro, upgraded.Plan)

	downgraded, err := svc.UpgradePlan(ctx, acmeID, "acme", "free")
	require.NoError(t, err)
	assert.Equal(t, PlanFree, downgraded.Plan)
}

func TestUpgradePlan_SlugMismatchReadsNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	// An acme admin probing another tenant's slug learns nothing.
	_, err := svc.UpgradePlan(context.Background(), acmeID, "globex", "pro")
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestInvite_CreatesFreeMemberInOwnTenant(t *testing.T) {
	svc, users, _ := newTestService()

	invited, err := svc.Invite(
		context.Background(),
		acmeID,
		"acme",
		"new@acme.test",
		user.RoleMember,
	)
	require.NoError(t, err)

	stored := users.users[invited.ID]
	require.NotNil(t, stored)
	assert.Equal(t, acmeID, stored.TenantID)
	assert.Equal(t, user.PlanFree, stored.Plan)
	assert.Equal(t, user.RoleMember, stored.Role)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, InvitePassword, stored.PasswordHash)
}

func TestInvite_DuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Invite(ctx, acmeID, "acme", "x@acme.test", user.RoleMember)
	require.NoError(t, err)

	_, err = svc.Invite(ctx, acmeID, "acme", "x@acme.test", user.RoleMember)
	require.ErrorIs(t, err, ErrUserExists)
}

func TestInvite_RejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Invite(
		context.Background(),
		acmeID,
		"acme",
		"y@acme.test",
		"superuser",
	)
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestListUsers_ScopedToTenant(t *testing.T) {
	svc, users, _ := newTestService()
	users.users[otherAdminID] = &user.User{
		ID:       otherAdminID,
		Email:    "admin@globex.test",
		Role:     user.RoleAdmin,
		TenantID: "9f1c7d2e-5a3b-4c8d-9e0f-1a2b3c4d5e6f",
	}

	listed, err := svc.ListUsers(context.Background(), acmeID, "acme")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, u := range listed {
		assert.Equal(t, acmeID, u.TenantID)
	}
}

func TestToggleUserPlan_FlipsMember(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	toggled, err := svc.ToggleUserPlan(ctx, acmeID, "acme", acmeMemberID)
	require.NoError(t, err)
	assert.Equal(t, user.PlanPro, toggled.Plan)

	toggled, err = svc.ToggleUserPlan(ctx, acmeID, "acme", acmeMemberID)
	require.NoError(t, err)
	assert.Equal(t, user.PlanFree, toggled.Plan)
}

func TestToggleUserPlan_RefusesAdmins(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ToggleUserPlan(context.Background(), acmeID, "acme", acmeAdminID)
	require.ErrorIs(t, err, ErrCannotChangeAdminPlan)
}

func TestToggleUserPlan_UnknownTargetNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ToggleUserPlan(
		context.Background(),
		acmeID,
		"acme",
		"11111111-2222-3333-4444-555555555555",
	)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser_CascadesMember(t *testing.T) {
	svc, users, cascade := newTestService()

	err := svc.DeleteUser(
		context.Background(),
		acmeID,
		"acme",
		acmeAdminID,
		acmeMemberID,
	)
	require.NoError(t, err)

	require.Len(t, cascade.calls, 1)
	assert.Equal(t, [2]string{acmeID, acmeMemberID}, cascade.calls[0])
	assert.NotContains(t, users.users, acmeMemberID)
}

func TestDeleteUser_RefusesAdminTarget(t *testing.T) {
	svc, users, cascade := newTestService()
	users.users[otherAdminID] = &user.User{
		ID:       otherAdminID,
		Email:    "second-admin@acme.test",
		Role:     user.RoleAdmin,
		TenantID: acmeID,
	}

	err := svc.DeleteUser(
		context.Background(),
		acmeID,
		"acme",
		acmeAdminID,
		otherAdminID,
	)
	require.ErrorIs(t, err, ErrCannotDeleteAdmin)
	assert.Empty(t, cascade.calls)
}

func TestDeleteUser_RefusesSelf(t *testing.T) {
	svc, _, cascade := newTestService()

	err := svc.DeleteUser(
		context.Background(),
		acmeID,
		"acme",
		acmeAdminID,
		acmeAdminID,
	)
	require.ErrorIs(t, err, ErrCannotDeleteSelf)
	assert.Empty(t, cascade.calls)
}

func TestDeleteUser_CrossTenantSlugReadsNotFound(t *testing.T) {
	svc, _, cascade := newTestService()

	err := svc.DeleteUser(
		context.Background(),
		acmeID,
		"globex",
		acmeAdminID,
		acmeMemberID,
	)
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.Empty(t, cascade.calls)
}
