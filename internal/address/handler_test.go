// SoleStyle | 2026
// handler_test.go

package address

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutesUnderUserSubtree(t *testing.T) {
	repo := &fakeRepo{defaultIDs: map[int64]bool{}}
	handler := NewHandler(NewService(repo))

	r := chi.NewRouter()
	r.Route("/user", handler.RegisterRoutes)

	req := httptest.NewRequest(http.MethodGet, "/user/addresses", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/user/addresses/8/default", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"clear", "set"}, repo.calls)

	req = httptest.NewRequest(http.MethodGet, "/addresses", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
