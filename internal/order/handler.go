// SoleStyle | 2026
// handler.go

package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solestyle/api/internal/core"
	"github.com/solestyle/api/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes hangs the order history off the authenticated account
// subtree, so the full path is /user/orders.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/orders", h.List)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	orders, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, orders)
}
