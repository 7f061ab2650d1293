// AngelaMos | 2026
// entity.go

package tenant

import (
	"time"
)

// Tenant's plan is tenant-wide and mutated only by the upgrade operation.
// Individual users carry their own plan field; quota enforcement reads the
// user's, not this one.
type Tenant struct {
	ID        string    `db:"id"         json:"id"`
	Slug      string    `db:"slug"       json:"slug"`
	Name      string    `db:"name"       json:"name"`
	Plan      string    `db:"plan"       json:"plan"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// NormalizePlan mirrors the upgrade endpoint's contract: anything that is not
// exactly "free" requests "pro".
func NormalizePlan(plan string) string {
	if plan == PlanFree {
		return PlanFree
	}
	return PlanPro
}
