// AngelaMos | 2026
// service_test.go

package note

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/noteplane/internal/core"
	"github.com/carterperez-dev/noteplane/internal/user"
)

const (
	acmeID   = "3b241101-e2bb-4255-8caf-4136c566a962"
	globexID = "9f1c7d2e-5a3b-4c8d-9e0f-1a2b3c4d5e6f"
	aliceID  = "8f14e45f-ceea-467f-abce-0d4b1b5c4e1a"
	bobID    = "c4ca4238-a0b9-4382-8dcc-509a6f75849b"
)

type fakeNoteRepo struct {
	notes map[string]*Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*Note)}
}

func (f *fakeNoteRepo) Create(_ context.Context, note *Note) error {
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	f.notes[note.ID] = note
	return nil
}

func (f *fakeNoteRepo) GetForOwner(
	_ context.Context,
	id, tenantID, createdBy string,
) (*Note, error) {
	n, ok := f.notes[id]
	if !ok || n.TenantID != tenantID || n.CreatedBy != createdBy {
		return nil, fmt.Errorf("get note: %w", core.ErrNotFound)
	}
	return n, nil
}

func (f *fakeNoteRepo) ListForOwner(
	_ context.Context,
	tenantID, createdBy string,
	_ int,
) ([]Note, error) {
	var out []Note
	for _, n := range f.notes {
		if n.TenantID == tenantID && n.CreatedBy == createdBy {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) UpdateForOwner(
	ctx context.Context,
	id, tenantID, createdBy, title, content string,
) (*Note, error) {
	n, err := f.GetForOwner(ctx, id, tenantID, createdBy)
	if err != nil {
		return nil, err
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now()
	return n, nil
}

func (f *fakeNoteRepo) DeleteForOwner(
	ctx context.Context,
	id, tenantID, createdBy string,
) error {
	if _, err := f.GetForOwner(ctx, id, tenantID, createdBy); err != nil {
		return err
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepo) CountForOwner(
	_ context.Context,
	tenantID, createdBy string,
) (int, error) {
	count := 0
	for _, n := range f.notes {
		if n.TenantID == tenantID && n.CreatedBy == createdBy {
			count++
		}
	}
	return count, nil
}

func (f *fakeNoteRepo) DeleteByCreator(
	_ context.Context,
	tenantID, createdBy string,
) error {
	for id, n := range f.notes {
		if n.TenantID == tenantID && n.CreatedBy == createdBy {
			delete(f.notes, id)
		}
	}
	return nil
}

type fakeUserDirectory struct {
	users map[string]*user.User
}

func (f *fakeUserDirectory) GetByIDInTenant(
	_ context.Context,
	id, tenantID string,
) (*user.User, error) {
	u, ok := f.users[id]
	if !ok || u.TenantID != tenantID {
		return nil, fmt.Errorf("get tenant user: %w", core.ErrNotFound)
	}
	return u, nil
}

type fakeTenantDirectory struct {
	ids map[string]bool
}

func (f *fakeTenantDirectory) ExistsByID(
	_ context.Context,
	id string,
) (bool, error) {
	return f.ids[id], nil
}

func newTestService(users ...*user.User) (*Service, *fakeNoteRepo) {
	repo := newFakeNoteRepo()
	dir := &fakeUserDirectory{users: make(map[string]*user.User)}
	for _, u := range users {
		dir.users[u.ID] = u
	}
	tenants := &fakeTenantDirectory{ids: map[string]bool{
		acmeID:   true,
		globexID: true,
	}}
	return NewService(repo, dir, tenants), repo
}

func freeMember() *user.User {
	return &user.User{
		ID:       aliceID,
		Email:    "user@acme.test",
		Role:     user.RoleMember,
		Plan:     user.PlanFree,
		TenantID: acmeID,
	}
}

func TestCreate_FreeUserCappedAtThree(t *testing.T) {
	svc, _ := newTestService(freeMember())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := svc.Create(ctx, acmeID, aliceID, fmt.Sprintf("note %d", i), "body")
		require.NoError(t, err, "note %d should be under the cap", i)
	}

	_, err := svc.Create(ctx, acmeID, aliceID, "note 4", "body")
	require.ErrorIs(t, err, ErrFreeLimitReached)
}

func TestCreate_ProUserUnlimited(t *testing.T) {
	member := freeMember()
	member.Plan = user.PlanPro
	svc, _ := newTestService(member)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := svc.Create(ctx, acmeID, aliceID, fmt.Sprintf("note %d", i), "body")
		require.NoError(t, err)
	}
}

func TestCreate_AdminEffectivelyPro(t *testing.T) {
	// Stored plan says free, but admins are always treated as pro.
	admin := freeMember()
	admin.Role = user.RoleAdmin
	svc, _ := newTestService(admin)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := svc.Create(ctx, acmeID, aliceID, fmt.Sprintf("note %d", i), "body")
		require.NoError(t, err)
	}
}

func TestCreate_PlanResolvedFromStoreNotToken(t *testing.T) {
	member := freeMember()
	svc, _ := newTestService(member)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := svc.Create(ctx, acmeID, aliceID, fmt.Sprintf("note %d", i), "body")
		require.NoError(t, err)
	}

	// Plan changes after login; the next create sees the new plan immediately.
	member.Plan = user.PlanPro
	_, err := svc.Create(ctx, acmeID, aliceID, "note 4", "body")
	require.NoError(t, err)
}

func TestCreate_UnknownTenant(t *testing.T) {
	svc, _ := newTestService(freeMember())

	_, err := svc.Create(
		context.Background(),
		"11111111-2222-3333-4444-555555555555",
		aliceID,
		"title",
		"body",
	)
	require.ErrorIs(t, err, ErrInvalidTenant)
}

func TestCreate_UserOutsideTenant(t *testing.T) {
	svc, _ := newTestService(freeMember())

	// Real user, wrong tenant in the token.
	_, err := svc.Create(context.Background(), globexID, aliceID, "title", "body")
	require.ErrorIs(t, err, ErrInvalidUser)
}

func TestCreate_StampsOwnershipFromContext(t *testing.T) {
	svc, repo := newTestService(freeMember())

	created, err := svc.Create(context.Background(), acmeID, aliceID, "t", "c")
	require.NoError(t, err)

	stored := repo.notes[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, acmeID, stored.TenantID)
	assert.Equal(t, aliceID, stored.CreatedBy)
}

func TestGet_WrongOwnerFoldsToNotFound(t *testing.T) {
	svc, _ := newTestService(freeMember())
	ctx := context.Background()

	created, err := svc.Create(ctx, acmeID, aliceID, "secret", "body")
	require.NoError(t, err)

	// Different user, same tenant.
	_, err = svc.Get(ctx, created.ID, acmeID, bobID)
	require.ErrorIs(t, err, core.ErrNotFound)

	// Same user, different tenant.
	_, err = svc.Get(ctx, created.ID, globexID, aliceID)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateAndDelete_OwnerOnly(t *testing.T) {
	svc, _ := newTestService(freeMember())
	ctx := context.Background()

	created, err := svc.Create(ctx, acmeID, aliceID, "before", "body")
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, acmeID, bobID, "after", "body")
	require.ErrorIs(t, err, core.ErrNotFound)

	updated, err := svc.Update(ctx, created.ID, acmeID, aliceID, "after", "body")
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)

	err = svc.Delete(ctx, created.ID, globexID, aliceID)
	require.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID, acmeID, aliceID))
}
