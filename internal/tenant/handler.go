// AngelaMos | 2026
// handler.go

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carterperez-dev/noteplane/internal/core"
	"github.com/carterperez-dev/noteplane/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, tenantGuard, requireAdmin func(http.Handler) http.Handler,
) {
	r.Route("/tenants/{slug}", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(tenantGuard)
		r.Use(requireAdmin)

		r.Post("/upgrade", h.Upgrade)
		r.Post("/invite", h.Invite)
		r.Get("/users", h.ListUsers)
		r.Post("/users/{userID}/toggle-plan", h.ToggleUserPlan)
		r.Delete("/users/{userID}", h.DeleteUser)
	})
}

// Upgrade accepts an optional plan in the body. Anything that is not exactly
// "free" is taken as a request for "pro", an empty body included.
func (h *Handler) Upgrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpgradeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			core.BadRequest(w, "invalid_body")
			return
		}
	}

	updated, err := h.service.UpgradePlan(
		ctx,
		middleware.GetTenantID(ctx),
		chi.URLParam(r, "slug"),
		req.Plan,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToTenantResponse(updated))
}

func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid_body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "invalid_body")
		return
	}

	invited, err := h.service.Invite(
		ctx,
		middleware.GetTenantID(ctx),
		chi.URLParam(r, "slug"),
		req.Email,
		req.Role,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, InviteResponse{
		ID:    invited.ID,
		Email: invited.Email,
		Role:  invited.Role,
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.service.ListUsers(
		ctx,
		middleware.GetTenantID(ctx),
		chi.URLParam(r, "slug"),
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, MemberListResponse{Users: ToMemberResponseList(users)})
}

func (h *Handler) ToggleUserPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	targetID, ok := userPathID(w, r)
	if !ok {
		return
	}

	updated, err := h.service.ToggleUserPlan(
		ctx,
		middleware.GetTenantID(ctx),
		chi.URLParam(r, "slug"),
		targetID,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToMemberResponse(updated))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	targetID, ok := userPathID(w, r)
	if !ok {
		return
	}

	err := h.service.DeleteUser(
		ctx,
		middleware.GetTenantID(ctx),
		chi.URLParam(r, "slug"),
		middleware.GetUserID(ctx),
		targetID,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w)
	case errors.Is(err, ErrUserNotFound):
		core.WriteJSON(w, http.StatusNotFound, core.ErrorBody{
			Error: "user_not_found",
		})
	case errors.Is(err, ErrUserExists):
		core.JSONError(w, core.ConflictError("user_exists"))
	case errors.Is(err, ErrInvalidRole):
		core.BadRequest(w, "invalid_body")
	case errors.Is(err, ErrCannotChangeAdminPlan):
		core.BadRequest(w, "cannot_change_admin_plan")
	case errors.Is(err, ErrCannotDeleteAdmin):
		core.BadRequest(w, "cannot_delete_admin")
	case errors.Is(err, ErrCannotDeleteSelf):
		core.BadRequest(w, "cannot_delete_self")
	default:
		core.InternalServerError(w, err)
	}
}

func userPathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "userID")
	if _, err := uuid.Parse(id); err != nil {
		core.WriteJSON(w, http.StatusNotFound, core.ErrorBody{
			Error: "user_not_found",
		})
		return "", false
	}
	return id, true
}
