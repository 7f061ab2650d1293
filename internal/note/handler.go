// AngelaMos | 2026
// handler.go

package note

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
	authenticator, tenantGuard func(http.Handler) http.Handler,
) {
	r.Route("/notes", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(tenantGuard)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{noteID}", h.Get)
		r.Put("/{noteID}", h.Update)
		r.Delete("/{noteID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)

	notes, err := h.service.List(ctx, tenantID, userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, NoteListResponse{Notes: ToNoteResponseList(notes)})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid_body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "invalid_body")
		return
	}

	note, err := h.service.Create(ctx, tenantID, userID, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrFreeLimitReached):
			core.JSONError(w, core.NewAppError(
				err,
				"free plan allows at most 3 notes",
				http.StatusForbidden,
				"free_limit_reached",
			))
		case errors.Is(err, ErrInvalidTenant):
			core.BadRequest(w, "invalid_tenant")
		case errors.Is(err, ErrInvalidUser):
			core.BadRequest(w, "invalid_user")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, CreateNoteResponse{ID: note.ID})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	noteID, ok := notePathID(w, r)
	if !ok {
		return
	}

	note, err := h.service.Get(
		ctx,
		noteID,
		middleware.GetTenantID(ctx),
		middleware.GetUserID(ctx),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToNoteResponse(note))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	noteID, ok := notePathID(w, r)
	if !ok {
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid_body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "invalid_body")
		return
	}

	note, err := h.service.Update(
		ctx,
		noteID,
		middleware.GetTenantID(ctx),
		middleware.GetUserID(ctx),
		req.Title,
		req.Content,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToNoteResponse(note))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	noteID, ok := notePathID(w, r)
	if !ok {
		return
	}

	err := h.service.Delete(
		ctx,
		noteID,
		middleware.GetTenantID(ctx),
		middleware.GetUserID(ctx),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

// notePathID treats a malformed id the same as an unknown one. The store's
// ids are UUIDs; anything else can't name a note.
func notePathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "noteID")
	if _, err := uuid.Parse(id); err != nil {
		core.NotFound(w)
		return "", false
	}
	return id, true
}
