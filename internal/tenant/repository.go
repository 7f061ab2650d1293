// AngelaMos | 2026
// repository.go

package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carterperez-dev/noteplane/internal/core"
)

type Repository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id string) (*Tenant, error)
	GetByIDAndSlug(ctx context.Context, id, slug string) (*Tenant, error)
	UpdatePlan(ctx context.Context, id, slug, plan string) (*Tenant, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tenant *Tenant) error {
	query := `
		INSERT INTO tenants (id, slug, name, plan)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &tenant.CreatedAt, query,
		tenant.ID,
		tenant.Slug,
		tenant.Name,
		tenant.Plan,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create tenant: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create tenant: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Tenant, error) {
	query := `
		SELECT id, slug, name, plan, created_at
		FROM tenants
		WHERE id = $1`

	var tenant Tenant
	err := r.db.GetContext(ctx, &tenant, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get tenant: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}

	return &tenant, nil
}

// GetByIDAndSlug is the cross-tenant administration guard: the id comes from
// the token, the slug from the path, and both must name the same tenant.
func (r *repository) GetByIDAndSlug(
	ctx context.Context,
	id, slug string,
) (*Tenant, error) {
	query := `
		SELECT id, slug, name, plan, created_at
		FROM tenants
		WHERE id = $1 AND slug = $2`

	var tenant Tenant
	err := r.db.GetContext(ctx, &tenant, query, id, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get tenant by slug: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant by slug: %w", err)
	}

	return &tenant, nil
}

func (r *repository) UpdatePlan(
	ctx context.Context,
	id, slug, plan string,
) (*Tenant, error) {
	query := `
		UPDATE tenants
		SET plan = $3
		WHERE id = $1 AND slug = $2
		RETURNING id, slug, name, plan, created_at`

	var tenant Tenant
	err := r.db.GetContext(ctx, &tenant, query, id, slug, plan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update tenant plan: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update tenant plan: %w", err)
	}

	return &tenant, nil
}

func (r *repository) ExistsByID(
	ctx context.Context,
	id string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check tenant exists: %w", err)
	}

	return exists, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
