// SoleStyle | 2026
// dto.go

package catalog

import (
	"strings"

	"github.com/solestyle/api/internal/core"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// sortColumns is the allowlist for client-supplied sort keys. Anything
// outside it falls back silently to newest-first.
var sortColumns = map[string]string{
	"name":           "p.name",
	"price":          "p.price",
	"created_at":     "p.created_at",
	"average_rating": "average_rating",
}

type ListProductsParams struct {
	Page     int
	Limit    int
	Category string
	Brand    string
	Gender   string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Featured bool
	Sort     string
	Order    string
}

// Normalize clamps paging and resolves the sort expression. Column and
// direction fall back independently: a bad column keeps a valid direction.
func (p *ListProductsParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}

	if _, ok := sortColumns[p.Sort]; !ok {
		p.Sort = "created_at"
	}

	p.Order = strings.ToLower(p.Order)
	if p.Order != "asc" && p.Order != "desc" {
		p.Order = "desc"
	}
}

func (p *ListProductsParams) orderByClause() string {
	return sortColumns[p.Sort] + " " + p.Order
}

func (p *ListProductsParams) offset() int {
	return (p.Page - 1) * p.Limit
}

type ProductListResponse struct {
	Products   []ProductSummary `json:"products"`
	Pagination core.Pagination  `json:"pagination"`
}

type ProductDetailResponse struct {
	ProductSummary
	SKU     string         `json:"sku"`
	Images  []ProductImage `json:"images"`
	Sizes   []ProductSize  `json:"sizes"`
	Reviews []Review       `json:"reviews"`
}
