// AngelaMos | 2026
// service.go

package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/noteplane/internal/core"
	"github.com/carterperez-dev/noteplane/internal/note"
	"github.com/carterperez-dev/noteplane/internal/user"
)

// InvitePassword is the placeholder credential every invited user starts
// with. A known operational weak point, kept for parity with the seed data.
const InvitePassword = "password"

var (
	ErrUserExists            = errors.New("email already registered")
	ErrUserNotFound          = errors.New("user not found in tenant")
	ErrInvalidRole           = errors.New("role must be admin or member")
	ErrCannotChangeAdminPlan = errors.New("admin plan cannot be changed")
	ErrCannotDeleteAdmin     = errors.New("admin users cannot be deleted")
	ErrCannotDeleteSelf      = errors.New("cannot delete own account")
)

type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	GetByIDInTenant(ctx context.Context, id, tenantID string) (*user.User, error)
	ListByTenant(ctx context.Context, tenantID string) ([]user.User, error)
	UpdatePlan(ctx context.Context, id, tenantID, plan string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Cascader removes a user together with every note they created, atomically.
type Cascader interface {
	DeleteUserWithNotes(ctx context.Context, tenantID, userID string) error
}

// Service implements the tenant administration policy. Every operation first
// resolves the tenant by (id from token, slug from path); a mismatch reads as
// not found so an admin for tenant A learns nothing about tenant B.
type Service struct {
	tenants Repository
	users   UserStore
	cascade Cascader
}

func NewService(tenants Repository, users UserStore, cascade Cascader) *Service {
	return &Service{
		tenants: tenants,
		users:   users,
		cascade: cascade,
	}
}

func (s *Service) UpgradePlan(
	ctx context.Context,
	tenantID, slug, requestedPlan string,
) (*Tenant, error) {
	if _, err := s.tenants.GetByIDAndSlug(ctx, tenantID, slug); err != nil {
		return nil, err
	}

	return s.tenants.UpdatePlan(ctx, tenantID, slug, NormalizePlan(requestedPlan))
}

// Invite creates a member of the admin's own tenant. Email uniqueness is
// global, not per-tenant, so an address registered anywhere conflicts.
func (s *Service) Invite(
	ctx context.Context,
	tenantID, slug, email, role string,
) (*user.User, error) {
	if _, err := s.tenants.GetByIDAndSlug(ctx, tenantID, slug); err != nil {
		return nil, err
	}

	if !user.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check invite email: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	passwordHash, err := core.HashPassword(InvitePassword)
	if err != nil {
		return nil, fmt.Errorf("hash invite password: %w", err)
	}

	invited := &user.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Plan:         user.PlanFree,
		TenantID:     tenantID,
	}

	if err := s.users.Create(ctx, invited); err != nil {
		// Lost the race with a concurrent registration of the same email.
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return invited, nil
}

func (s *Service) ListUsers(
	ctx context.Context,
	tenantID, slug string,
) ([]user.User, error) {
	if _, err := s.tenants.GetByIDAndSlug(ctx, tenantID, slug); err != nil {
		return nil, err
	}

	return s.users.ListByTenant(ctx, tenantID)
}

// ToggleUserPlan flips a member between free and pro. Admins are always
// effectively pro, so their stored plan is not allowed to change.
func (s *Service) ToggleUserPlan(
	ctx context.Context,
	tenantID, slug, targetID string,
) (*user.User, error) {
	if _, err := s.tenants.GetByIDAndSlug(ctx, tenantID, slug); err != nil {
		return nil, err
	}

	target, err := s.users.GetByIDInTenant(ctx, targetID, tenantID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if target.IsAdmin() {
		return nil, ErrCannotChangeAdminPlan
	}

	newPlan := user.PlanPro
	if target.Plan == user.PlanPro {
		newPlan = user.PlanFree
	}

	return s.users.UpdatePlan(ctx, targetID, tenantID, newPlan)
}

func (s *Service) DeleteUser(
	ctx context.Context,
	tenantID, slug, actorID, targetID string,
) error {
	if _, err := s.tenants.GetByIDAndSlug(ctx, tenantID, slug); err != nil {
		return err
	}

	target, err := s.users.GetByIDInTenant(ctx, targetID, tenantID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if target.ID == actorID {
		return ErrCannotDeleteSelf
	}
	if target.IsAdmin() {
		return ErrCannotDeleteAdmin
	}

	return s.cascade.DeleteUserWithNotes(ctx, tenantID, targetID)
}

// txCascader runs the user-deletion cascade in a single transaction so a
// crash can never leave orphaned notes behind.
type txCascader struct {
	db *sqlx.DB
}

func NewCascader(db *sqlx.DB) Cascader {
	return &txCascader{db: db}
}

func (c *txCascader) DeleteUserWithNotes(
	ctx context.Context,
	tenantID, userID string,
) error {
	return core.InTx(ctx, c.db, func(tx *sqlx.Tx) error {
		if err := note.NewRepository(tx).DeleteByCreator(ctx, tenantID, userID); err != nil {
			return err
		}
		return user.NewRepository(tx).DeleteByIDInTenant(ctx, userID, tenantID)
	})
}
