// SoleStyle | 2026
// handler_test.go

package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solestyle/api/internal/middleware"
)

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

func TestAddMountedAtCollectionRoot(t *testing.T) {
	repo := &fakeRepo{activeProducts: map[int64]bool{5: true}}
	handler := NewHandler(NewService(repo))

	r := chi.NewRouter()
	handler.RegisterRoutes(r, asUser(1))

	body := strings.NewReader(`{"productId": 5, "quantity": 1}`)
	req := httptest.NewRequest(http.MethodPost, "/cart", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.upserts, 1)
	assert.Equal(t, upsertCall{1, 5, "", 1}, repo.upserts[0])
}

func TestAddSubpathNoLongerRouted(t *testing.T) {
	repo := &fakeRepo{activeProducts: map[int64]bool{5: true}}
	handler := NewHandler(NewService(repo))

	r := chi.NewRouter()
	handler.RegisterRoutes(r, asUser(1))

	body := strings.NewReader(`{"productId": 5, "quantity": 1}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/add", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Empty(t, repo.upserts)
}

func TestAddRequestSizeOptional(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	assert.NoError(t, v.Struct(AddItemRequest{ProductID: 1, Quantity: 1}))
	assert.NoError(t, v.Struct(AddItemRequest{
		ProductID: 1,
		Size:      "10.5",
		Quantity:  1,
	}))
	assert.Error(t, v.Struct(AddItemRequest{Size: "10.5", Quantity: 1}))
}

func TestAddWithSizedLine(t *testing.T) {
	repo := &fakeRepo{activeProducts: map[int64]bool{5: true}}
	handler := NewHandler(NewService(repo))

	r := chi.NewRouter()
	handler.RegisterRoutes(r, asUser(7))

	body := strings.NewReader(`{"productId": 5, "size": "9", "quantity": 2}`)
	req := httptest.NewRequest(http.MethodPost, "/cart", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.upserts, 1)
	assert.Equal(t, upsertCall{7, 5, "9", 2}, repo.upserts[0])
}
