// SoleStyle | 2026
// handler.go

package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/solestyle/api/internal/core"
	"github.com/solestyle/api/internal/middleware"
	"github.com/solestyle/api/internal/order"
)

// OverviewProvider supplies the account-dashboard summary, which is built
// from order history owned by another domain.
type OverviewProvider interface {
	AccountOverview(ctx context.Context, userID int64) (*order.Overview, error)
}

type Handler struct {
	service   *Service
	overview  OverviewProvider
	validator *validator.Validate
}

func NewHandler(service *Service, overview OverviewProvider) *Handler {
	return &Handler{
		service:   service,
		overview:  overview,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes owns the authenticated /user subtree. Sibling domains
// that live under it (orders, addresses) register through nested.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	changePassword http.HandlerFunc,
	nested ...func(chi.Router),
) {
	r.Route("/user", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)
		r.Get("/overview", h.GetOverview)
		r.Put("/change-password", changePassword)

		for _, register := range nested {
			register(r)
		}
	})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "User")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "User")
			return
		}
		core.JSONError(w, err)
		return
	}

	core.OK(w, map[string]any{
		"message": "Profile updated successfully",
		"user":    profile,
	})
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	overview, err := h.overview.AccountOverview(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, overview)
}
