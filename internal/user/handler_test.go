// SoleStyle | 2026
// handler_test.go

package user

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/solestyle/api/internal/middleware"
	"github.com/solestyle/api/internal/order"
)

type stubOverview struct{}

func (stubOverview) AccountOverview(
	_ context.Context,
	_ int64,
) (*order.Overview, error) {
	return &order.Overview{}, nil
}

func asUser(userID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(
				r.Context(),
				middleware.UserIDKey,
				userID,
			)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Nested domains register inside the /user group and inherit its
// authentication, so their handlers see the resolved user ID.
func TestRegisterRoutesNestsUnderUser(t *testing.T) {
	handler := NewHandler(NewService(nil), stubOverview{})

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "user=%d", middleware.GetUserID(r.Context()))
	}

	changePassword := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	r := chi.NewRouter()
	handler.RegisterRoutes(
		r,
		asUser(42),
		changePassword,
		func(r chi.Router) { r.Get("/orders", echoUser) },
		func(r chi.Router) {
			r.Route("/addresses", func(r chi.Router) {
				r.Get("/", echoUser)
			})
		},
	)

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
	}{
		{"orders", http.MethodGet, "/user/orders", http.StatusOK, "user=42"},
		{"addresses", http.MethodGet, "/user/addresses", http.StatusOK, "user=42"},
		{"change password", http.MethodPut, "/user/change-password", http.StatusNoContent, ""},
		{"orders not at root", http.MethodGet, "/orders", http.StatusNotFound, ""},
		{"addresses not at root", http.MethodGet, "/addresses", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}
