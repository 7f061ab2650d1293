// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User belongs to exactly one tenant. Plan is per-user; the owning tenant has
// its own plan field and the two are allowed to disagree (quota enforcement
// reads the user's).
type User struct {
	ID           string    `db:"id"           json:"id"`
	Email        string    `db:"email"        json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role"         json:"role"`
	Plan         string    `db:"plan"         json:"plan"`
	TenantID     string    `db:"tenant_id"    json:"tenant_id"`
	CreatedAt    time.Time `db:"created_at"   json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// EffectivePlan treats admins as pro regardless of the stored value.
func (u *User) EffectivePlan() string {
	if u.IsAdmin() {
		return PlanPro
	}
	if u.Plan == "" {
		return PlanFree
	}
	return u.Plan
}

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

const (
	PlanFree = "free"
	PlanPro  = "pro"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}
