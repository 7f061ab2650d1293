// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carterperez-dev/noteplane/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByIDInTenant(ctx context.Context, id, tenantID string) (*User, error)
	ListByTenant(ctx context.Context, tenantID string) ([]User, error)
	UpdatePlan(ctx context.Context, id, tenantID, plan string) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteByIDInTenant(ctx context.Context, id, tenantID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, role, plan, tenant_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &user.CreatedAt, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Plan,
		user.TenantID,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, email, password_hash, role, plan, tenant_id, created_at
		FROM users
		WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `
		SELECT id, email, password_hash, role, plan, tenant_id, created_at
		FROM users
		WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// GetByIDInTenant scopes the lookup to the caller's tenant. A user that
// exists under another tenant reads as not found.
func (r *repository) GetByIDInTenant(
	ctx context.Context,
	id, tenantID string,
) (*User, error) {
	query := `
		SELECT id, email, password_hash, role, plan, tenant_id, created_at
		FROM users
		WHERE id = $1 AND tenant_id = $2`

	var user User
	err := r.db.GetContext(ctx, &user, query, id, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get tenant user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant user: %w", err)
	}

	return &user, nil
}

func (r *repository) ListByTenant(
	ctx context.Context,
	tenantID string,
) ([]User, error) {
	query := `
		SELECT id, email, password_hash, role, plan, tenant_id, created_at
		FROM users
		WHERE tenant_id = $1
		ORDER BY created_at ASC`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query, tenantID); err != nil {
		return nil, fmt.Errorf("list tenant users: %w", err)
	}

	return users, nil
}

func (r *repository) UpdatePlan(
	ctx context.Context,
	id, tenantID, plan string,
) (*User, error) {
	query := `
		UPDATE users
		SET plan = $3
		WHERE id = $1 AND tenant_id = $2
		RETURNING id, email, password_hash, role, plan, tenant_id, created_at`

	var user User
	err := r.db.GetContext(ctx, &user, query, id, tenantID, plan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update user plan: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update user plan: %w", err)
	}

	return &user, nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) DeleteByIDInTenant(
	ctx context.Context,
	id, tenantID string,
) error {
	query := `DELETE FROM users WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
