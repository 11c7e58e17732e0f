// SoleStyle | 2026
// handler.go

package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/solestyle/api/internal/core"
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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.SubmitMessage)
	r.Post("/newsletter", h.Subscribe)
}

func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "Name, email and message are required")
		return
	}

	if err := h.service.SubmitMessage(r.Context(), req); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, map[string]string{
		"message": "Message sent successfully",
	})
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "Valid email is required")
		return
	}

	if err := h.service.Subscribe(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			core.Conflict(w, "Email already subscribed")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, map[string]string{
		"message": "Subscribed successfully",
	})
}
