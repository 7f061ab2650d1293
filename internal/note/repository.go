// AngelaMos | 2026
// repository.go

package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/noteplane/internal/core"
)

type Repository interface {
	Create(ctx context.Context, note *Note) error
	GetForOwner(ctx context.Context, id, tenantID, createdBy string) (*Note, error)
	ListForOwner(ctx context.Context, tenantID, createdBy string, limit int) ([]Note, error)
	UpdateForOwner(ctx context.Context, id, tenantID, createdBy, title, content string) (*Note, error)
	DeleteForOwner(ctx context.Context, id, tenantID, createdBy string) error
	CountForOwner(ctx context.Context, tenantID, createdBy string) (int, error)
	DeleteByCreator(ctx context.Context, tenantID, createdBy string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, note *Note) error {
	query := `
		INSERT INTO notes (id, tenant_id, created_by, title, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, note, query,
		note.ID,
		note.TenantID,
		note.CreatedBy,
		note.Title,
		note.Content,
	)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	return nil
}

// GetForOwner matches on the full (id, tenant, creator) triple. A note that
// exists under another tenant or owner reads as not found so existence never
// leaks across boundaries.
func (r *repository) GetForOwner(
	ctx context.Context,
	id, tenantID, createdBy string,
) (*Note, error) {
	query := `
		SELECT id, tenant_id, created_by, title, content,
		       created_at, updated_at
		FROM notes
		WHERE id = $1 AND tenant_id = $2 AND created_by = $3`

	var note Note
	err := r.db.GetContext(ctx, &note, query, id, tenantID, createdBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get note: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	return &note, nil
}

func (r *repository) ListForOwner(
	ctx context.Context,
	tenantID, createdBy string,
	limit int,
) ([]Note, error) {
	query := `
		SELECT id, tenant_id, created_by, title, content,
		       created_at, updated_at
		FROM notes
		WHERE tenant_id = $1 AND created_by = $2
		ORDER BY created_at DESC`

	args := []any{tenantID, createdBy}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	var notes []Note
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (r *repository) UpdateForOwner(
	ctx context.Context,
	id, tenantID, createdBy, title, content string,
) (*Note, error) {
	query := `
		UPDATE notes
		SET title = $4, content = $5, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND created_by = $3
		RETURNING id, tenant_id, created_by, title, content,
		          created_at, updated_at`

	var note Note
	err := r.db.GetContext(ctx, &note, query, id, tenantID, createdBy, title, content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update note: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	return &note, nil
}

func (r *repository) DeleteForOwner(
	ctx context.Context,
	id, tenantID, createdBy string,
) error {
	query := `
		DELETE FROM notes
		WHERE id = $1 AND tenant_id = $2 AND created_by = $3`

	result, err := r.db.ExecContext(ctx, query, id, tenantID, createdBy)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete note: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CountForOwner(
	ctx context.Context,
	tenantID, createdBy string,
) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notes
		WHERE tenant_id = $1 AND created_by = $2`

	var count int
	if err := r.db.GetContext(ctx, &count, query, tenantID, createdBy); err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}

	return count, nil
}

// DeleteByCreator removes every note a user created in a tenant. Used by the
// user-deletion cascade.
func (r *repository) DeleteByCreator(
	ctx context.Context,
	tenantID, createdBy string,
) error {
	query := `DELETE FROM notes WHERE tenant_id = $1 AND created_by = $2`

	if _, err := r.db.ExecContext(ctx, query, tenantID, createdBy); err != nil {
		return fmt.Errorf("delete notes by creator: %w", err)
	}

	return nil
}
