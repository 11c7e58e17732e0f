// SoleStyle | 2026
// service.go

package catalog

import (
	"context"
	"strconv"

	"github.com/solestyle/api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProducts(
	ctx context.Context,
	params ListProductsParams,
) (*ProductListResponse, error) {
	params.Normalize()

	products, total, err := s.repo.ListProducts(ctx, params)
	if err != nil {
		return nil, err
	}

	return &ProductListResponse{
		Products:   products,
		Pagination: core.NewPagination(params.Page, params.Limit, total),
	}, nil
}

// GetProduct resolves an all-digits identifier as a primary key and
// anything else as a slug.
func (s *Service) GetProduct(
	ctx context.Context,
	identifier string,
) (*ProductDetailResponse, error) {
	if id, ok := parseNumericID(identifier); ok {
		return s.repo.GetProductByID(ctx, id)
	}

	return s.repo.GetProductBySlug(ctx, identifier)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) ListBrands(ctx context.Context) ([]Brand, error) {
	return s.repo.ListBrands(ctx)
}

func (s *Service) ListProductsForAdmin(
	ctx context.Context,
	limit, offset int,
) ([]AdminProductRow, int, error) {
	return s.repo.ListProductsForAdmin(ctx, limit, offset)
}

func (s *Service) ListCategoriesForAdmin(
	ctx context.Context,
) ([]AdminCategoryRow, error) {
	return s.repo.ListCategoriesForAdmin(ctx)
}

func parseNumericID(identifier string) (int64, bool) {
	if identifier == "" {
		return 0, false
	}
	for _, c := range identifier {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	id, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
