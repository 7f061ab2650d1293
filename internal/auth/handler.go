// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/noteplane/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the login endpoint behind its dedicated rate
// limiter. The limiter guards credential guessing specifically and applies
// before credentials are even read.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	loginLimiter func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.With(loginLimiter).Post("/login", h.Login)
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "missing_credentials")
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials):
			core.BadRequest(w, "missing_credentials")
		case errors.Is(err, ErrInvalidCredentials):
			core.WriteJSON(w, http.StatusUnauthorized, core.ErrorBody{
				Error: "invalid_credentials",
			})
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, resp)
}
