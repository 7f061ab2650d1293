// AngelaMos | 2026
// dto.go

package tenant

import (
	"github.com/carterperez-dev/noteplane/internal/user"
)

type UpgradeRequest struct {
	Plan string `json:"plan"`
}

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required"`
}

type TenantResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Plan string `json:"plan"`
}

type InviteResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// MemberResponse projects only what the dashboard needs; the password hash
// never leaves the users table.
type MemberResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Plan  string `json:"plan"`
}

type MemberListResponse struct {
	Users []MemberResponse `json:"users"`
}

func ToTenantResponse(t *Tenant) TenantResponse {
	return TenantResponse{
		ID:   t.ID,
		Slug: t.Slug,
		Name: t.Name,
		Plan: t.Plan,
	}
}

func ToMemberResponse(u *user.User) MemberResponse {
	return MemberResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Plan:  u.Plan,
	}
}

func ToMemberResponseList(users []user.User) []MemberResponse {
	members := make([]MemberResponse, 0, len(users))
	for _, u := range users {
		members = append(members, ToMemberResponse(&u))
	}
	return members
}
