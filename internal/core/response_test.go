// SoleStyle | 2026
// response_test.go

package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int
		wantPages int
	}{
		{"exact fit", 1, 12, 24, 2},
		{"partial last page", 1, 12, 25, 3},
		{"empty", 1, 12, 0, 0},
		{"single item", 1, 12, 1, 1},
		{"zero limit", 1, 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantPages, p.Pages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestJSONErrorAppError(t *testing.T) {
	rec := httptest.NewRecorder()

	JSONError(rec, NotFoundError("Product"))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Product not found", body.Error)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestJSONErrorOpaqueError(t *testing.T) {
	rec := httptest.NewRecorder()

	JSONError(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	raw := rec.Body.String()
	assert.NotContains(t, raw, "connection refused")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	assert.Equal(t, "Internal server error", body.Error)
}

func TestPaginatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	Paginated(rec, []string{"a", "b"}, 2, 10, 31)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body PaginatedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 4, body.Pagination.Pages)
}
