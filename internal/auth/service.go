// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/carterperez-dev/noteplane/internal/core"
	"github.com/carterperez-dev/noteplane/internal/tenant"
	"github.com/carterperez-dev/noteplane/internal/user"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type TenantStore interface {
	GetByID(ctx context.Context, id string) (*tenant.Tenant, error)
}

// Service handles login: credential verification and token minting. Tokens
// are never stored or revoked; a plan or role change shows up in new tokens
// only.
type Service struct {
	users   UserStore
	tenants TenantStore
	jwt     *JWTManager
	logger  *slog.Logger
}

func NewService(
	users UserStore,
	tenants TenantStore,
	jwt *JWTManager,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:   users,
		tenants: tenants,
		jwt:     jwt,
		logger:  logger,
	}
}

// Login verifies the password in constant time whether or not the email is
// registered, so response timing does not reveal which emails exist.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var storedHash *string
	account, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		storedHash = &account.PasswordHash
	case errors.Is(err, core.ErrNotFound):
		// fall through with a nil hash; the dummy verification runs anyway
	default:
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(password, storedHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid || account == nil {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		if upErr := s.users.UpdatePassword(ctx, account.ID, newHash); upErr != nil {
			s.logger.Warn("password rehash failed",
				"user_id", account.ID,
				"error", upErr,
			)
		}
	}

	org, err := s.tenants.GetByID(ctx, account.TenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve tenant for login: %w", err)
	}

	token, err := s.jwt.CreateToken(SessionClaims{
		UserID:   account.ID,
		TenantID: account.TenantID,
		Role:     account.Role,
		Plan:     account.EffectivePlan(),
	})
	if err != nil {
		return nil, fmt.Errorf("mint session token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User: UserSummary{
			ID:    account.ID,
			Email: account.Email,
			Role:  account.Role,
			Plan:  account.EffectivePlan(),
		},
		Tenant: TenantSummary{
			ID:   org.ID,
			Slug: org.Slug,
			Name: org.Name,
			Plan: org.Plan,
		},
	}, nil
}
