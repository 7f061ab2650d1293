// AngelaMos | 2026
// entity.go

package note

import (
	"time"
)

// Note carries a denormalized tenant id so every ownership check can match
// the (id, tenant, creator) triple in a single query.
type Note struct {
	ID        string    `db:"id"         json:"id"`
	TenantID  string    `db:"tenant_id"  json:"tenant_id"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	Title     string    `db:"title"      json:"title"`
	Content   string    `db:"content"    json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
