// AngelaMos | 2026
// service.go

package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/carterperez-dev/noteplane/internal/core"
	"github.com/carterperez-dev/noteplane/internal/user"
)

// FreeNoteLimit is the per-user cap on the free plan.
const FreeNoteLimit = 3

var (
	ErrFreeLimitReached = errors.New("free note limit reached")
	ErrInvalidTenant    = errors.New("tenant does not exist")
	ErrInvalidUser      = errors.New("user does not exist")
)

type UserDirectory interface {
	GetByIDInTenant(ctx context.Context, id, tenantID string) (*user.User, error)
}

type TenantDirectory interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// Service enforces the quota and ownership policy. Every operation takes the
// tenant and subject from the request's authorization context, never from the
// client body.
type Service struct {
	repo    Repository
	users   UserDirectory
	tenants TenantDirectory
}

func NewService(
	repo Repository,
	users UserDirectory,
	tenants TenantDirectory,
) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		tenants: tenants,
	}
}

func (s *Service) List(
	ctx context.Context,
	tenantID, userID string,
) ([]Note, error) {
	notes, err := s.repo.ListForOwner(ctx, tenantID, userID, 0)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Create resolves the acting user's plan from the store rather than trusting
// the plan claim baked into the token at login; a plan change takes effect on
// the next write, not the next login.
//
// The count-then-insert pair is not atomic: two concurrent creates from the
// same free user can both pass the count and exceed the cap by one. Accepted
// at this system's volume.
func (s *Service) Create(
	ctx context.Context,
	tenantID, userID, title, content string,
) (*Note, error) {
	exists, err := s.tenants.ExistsByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve tenant: %w", err)
	}
	if !exists {
		return nil, ErrInvalidTenant
	}

	actor, err := s.users.GetByIDInTenant(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrInvalidUser
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	if actor.EffectivePlan() == user.PlanFree {
		count, countErr := s.repo.CountForOwner(ctx, tenantID, userID)
		if countErr != nil {
			return nil, countErr
		}
		if count >= FreeNoteLimit {
			return nil, ErrFreeLimitReached
		}
	}

	note := &Note{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		CreatedBy: userID,
		Title:     title,
		Content:   content,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *Service) Get(
	ctx context.Context,
	id, tenantID, userID string,
) (*Note, error) {
	return s.repo.GetForOwner(ctx, id, tenantID, userID)
}

func (s *Service) Update(
	ctx context.Context,
	id, tenantID, userID, title, content string,
) (*Note, error) {
	return s.repo.UpdateForOwner(ctx, id, tenantID, userID, title, content)
}

func (s *Service) Delete(
	ctx context.Context,
	id, tenantID, userID string,
) error {
	return s.repo.DeleteForOwner(ctx, id, tenantID, userID)
}
