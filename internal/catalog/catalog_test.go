// SoleStyle | 2026
// catalog_test.go

package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClampsPaging(t *testing.T) {
	tests := []struct {
		name      string
		params    ListProductsParams
		wantPage  int
		wantLimit int
	}{
		{"defaults", ListProductsParams{}, 1, 12},
		{"negative page", ListProductsParams{Page: -3, Limit: 20}, 1, 20},
		{"limit cap", ListProductsParams{Page: 2, Limit: 500}, 2, 100},
		{"zero limit", ListProductsParams{Page: 2}, 2, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Normalize()
			assert.Equal(t, tt.wantPage, tt.params.Page)
			assert.Equal(t, tt.wantLimit, tt.params.Limit)
		})
	}
}

func TestNormalizeSortAllowlist(t *testing.T) {
	tests := []struct {
		name      string
		sort      string
		order     string
		wantOrder string
	}{
		{"valid", "price", "asc", "p.price asc"},
		{"rating", "average_rating", "desc", "average_rating desc"},
		{"unknown column keeps direction", "password_hash", "asc", "p.created_at asc"},
		{"unknown direction falls back", "name", "sideways", "p.name desc"},
		{"uppercase direction", "price", "ASC", "p.price asc"},
		{"mixed case direction", "name", "Desc", "p.name desc"},
		{"empty", "", "", "p.created_at desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ListProductsParams{Sort: tt.sort, Order: tt.order}
			params.Normalize()
			assert.Equal(t, tt.wantOrder, params.orderByClause())
		})
	}
}

func TestParseListParamsSortQueryKeys(t *testing.T) {
	req := httptest.NewRequest(
		http.MethodGet,
		"/products?category=men&sortBy=price&sortOrder=asc&page=1&limit=2",
		nil,
	)

	params := parseListParams(req)
	params.Normalize()

	assert.Equal(t, "men", params.Category)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 2, params.Limit)
	assert.Equal(t, "p.price asc", params.orderByClause())
}

func TestParseNumericID(t *testing.T) {
	id, ok := parseNumericID("123")
	require.True(t, ok)
	assert.Equal(t, int64(123), id)

	_, ok = parseNumericID("air-max-90")
	assert.False(t, ok)

	_, ok = parseNumericID("12abc")
	assert.False(t, ok)

	_, ok = parseNumericID("")
	assert.False(t, ok)
}

func TestBuildProductFilterAlwaysScopesActive(t *testing.T) {
	where, args := buildProductFilter(ListProductsParams{})

	assert.Equal(t, "WHERE p.is_active = true", where)
	assert.Empty(t, args)
}

func TestBuildProductFilterNumbersArgsSequentially(t *testing.T) {
	minPrice := 50.0
	maxPrice := 150.0
	params := ListProductsParams{
		Category: "running",
		Brand:    "nike",
		Gender:   "men",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Search:   "air",
		Featured: true,
	}

	where, args := buildProductFilter(params)

	assert.Equal(t, []any{
		"running", "nike", "men", 50.0, 150.0, "%air%",
	}, args)
	assert.Contains(t, where, "c.slug = $1")
	assert.Contains(t, where, "b.slug = $2")
	assert.Contains(t, where, "p.gender = $3")
	assert.Contains(t, where, "p.price >= $4")
	assert.Contains(t, where, "p.price <= $5")
	assert.Contains(t, where, "p.name ILIKE $6")
	assert.Contains(t, where, "p.is_featured = true")
}

func TestBuildProductFilterSkipsGenderAll(t *testing.T) {
	where, args := buildProductFilter(ListProductsParams{Gender: "all"})

	assert.NotContains(t, where, "p.gender")
	assert.Empty(t, args)
}

func TestBuildProductFilterEscapesSearch(t *testing.T) {
	_, args := buildProductFilter(ListProductsParams{Search: "50%_off\\"})

	require.Len(t, args, 1)
	assert.Equal(t, `%50\%\_off\\%`, args[0])
}
