// SoleStyle | 2026
// handler.go

package address

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/solestyle/api/internal/core"
	"github.com/solestyle/api/internal/middleware"
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

// RegisterRoutes hangs the address book off the authenticated account
// subtree, so the full paths are /user/addresses/*.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/addresses", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
		r.Put("/{id}/default", h.SetDefault)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	addresses, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, addresses)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	created, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, map[string]any{
		"message": "Address added successfully",
		"address": created,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	addressID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.NotFound(w, "Address")
		return
	}

	if err := h.service.Delete(r.Context(), userID, addressID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Address")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "Address deleted successfully"})
}

func (h *Handler) SetDefault(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	addressID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.NotFound(w, "Address")
		return
	}

	if err := h.service.SetDefault(r.Context(), userID, addressID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Address")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "Default address updated"})
}
