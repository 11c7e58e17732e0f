// SoleStyle | 2026
// repository.go

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/solestyle/api/internal/core"
)

type Repository interface {
	ListProducts(
		ctx context.Context,
		params ListProductsParams,
	) ([]ProductSummary, int, error)
	GetProductByID(ctx context.Context, id int64) (*ProductDetailResponse, error)
	GetProductBySlug(
		ctx context.Context,
		slug string,
	) (*ProductDetailResponse, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListBrands(ctx context.Context) ([]Brand, error)
	ListProductsForAdmin(
		ctx context.Context,
		limit, offset int,
	) ([]AdminProductRow, int, error)
	ListCategoriesForAdmin(ctx context.Context) ([]AdminCategoryRow, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const productSummaryColumns = `
	p.id, p.name, p.slug, p.description, p.price, p.sale_price,
	p.gender, p.stock_quantity, p.is_featured, p.created_at,
	b.name AS brand_name, c.name AS category_name,
	(SELECT pi.image_url FROM product_images pi
	 WHERE pi.product_id = p.id
	 ORDER BY pi.is_primary DESC, pi.sort_order, pi.id
	 LIMIT 1) AS primary_image,
	COALESCE(AVG(r.rating), 0) AS average_rating,
	COUNT(r.id) AS review_count`

const productJoins = `
	FROM products p
	LEFT JOIN brands b ON b.id = p.brand_id
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN reviews r ON r.product_id = p.id AND r.is_approved = true`

// buildProductFilter assembles the WHERE clause incrementally so every
// active filter lands in a positional argument. The search term feeds a
// single placeholder reused across the three ILIKE branches.
func buildProductFilter(params ListProductsParams) (string, []any) {
	conditions := []string{"p.is_active = true"}
	args := []any{}

	if params.Category != "" {
		args = append(args, params.Category)
		conditions = append(conditions, fmt.Sprintf("c.slug = $%d", len(args)))
	}

	if params.Brand != "" {
		args = append(args, params.Brand)
		conditions = append(conditions, fmt.Sprintf("b.slug = $%d", len(args)))
	}

	if params.Gender != "" && params.Gender != "all" {
		args = append(args, params.Gender)
		conditions = append(conditions, fmt.Sprintf("p.gender = $%d", len(args)))
	}

	if params.MinPrice != nil {
		args = append(args, *params.MinPrice)
		conditions = append(conditions, fmt.Sprintf("p.price >= $%d", len(args)))
	}

	if params.MaxPrice != nil {
		args = append(args, *params.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("p.price <= $%d", len(args)))
	}

	if params.Search != "" {
		args = append(args, "%"+escapeLike(params.Search)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		conditions = append(conditions, fmt.Sprintf(
			"(p.name ILIKE %[1]s OR p.description ILIKE %[1]s OR b.name ILIKE %[1]s)",
			placeholder,
		))
	}

	if params.Featured {
		conditions = append(conditions, "p.is_featured = true")
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *repository) ListProducts(
	ctx context.Context,
	params ListProductsParams,
) ([]ProductSummary, int, error) {
	where, args := buildProductFilter(params)

	query := fmt.Sprintf(`
		SELECT %s
		%s
		%s
		GROUP BY p.id, b.name, c.name
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		productSummaryColumns,
		productJoins,
		where,
		params.orderByClause(),
		len(args)+1,
		len(args)+2,
	)

	products := []ProductSummary{}
	pageArgs := append(append([]any{}, args...), params.Limit, params.offset())
	if err := r.db.SelectContext(ctx, &products, query, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(DISTINCT p.id)
		%s
		%s`,
		productJoins,
		where,
	)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	return products, total, nil
}

func (r *repository) GetProductByID(
	ctx context.Context,
	id int64,
) (*ProductDetailResponse, error) {
	return r.getProduct(ctx, "p.id = $1", id)
}

func (r *repository) GetProductBySlug(
	ctx context.Context,
	slug string,
) (*ProductDetailResponse, error) {
	return r.getProduct(ctx, "p.slug = $1", slug)
}

func (r *repository) getProduct(
	ctx context.Context,
	condition string,
	arg any,
) (*ProductDetailResponse, error) {
	query := fmt.Sprintf(`
		SELECT %s, p.sku
		%s
		WHERE %s AND p.is_active = true
		GROUP BY p.id, b.name, c.name`,
		productSummaryColumns,
		productJoins,
		condition,
	)

	var detail ProductDetailResponse
	if err := r.db.GetContext(ctx, &detail, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	if err := r.loadProductRelations(ctx, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}

func (r *repository) loadProductRelations(
	ctx context.Context,
	detail *ProductDetailResponse,
) error {
	detail.Images = []ProductImage{}
	imagesQuery := `
		SELECT id, image_url, alt_text, is_primary, sort_order
		FROM product_images
		WHERE product_id = $1
		ORDER BY sort_order, id`
	if err := r.db.SelectContext(
		ctx, &detail.Images, imagesQuery, detail.ID,
	); err != nil {
		return fmt.Errorf("load product images: %w", err)
	}

	detail.Sizes = []ProductSize{}
	sizesQuery := `
		SELECT size, stock_quantity
		FROM product_sizes
		WHERE product_id = $1 AND stock_quantity > 0
		ORDER BY size`
	if err := r.db.SelectContext(
		ctx, &detail.Sizes, sizesQuery, detail.ID,
	); err != nil {
		return fmt.Errorf("load product sizes: %w", err)
	}

	detail.Reviews = []Review{}
	reviewsQuery := `
		SELECT rv.id, rv.rating, rv.title, rv.comment,
		       u.first_name, u.last_name, rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.product_id = $1 AND rv.is_approved = true
		ORDER BY rv.created_at DESC
		LIMIT 10`
	if err := r.db.SelectContext(
		ctx, &detail.Reviews, reviewsQuery, detail.ID,
	); err != nil {
		return fmt.Errorf("load product reviews: %w", err)
	}

	return nil
}

func (r *repository) ListCategories(ctx context.Context) ([]Category, error) {
	query := `
		SELECT id, name, slug, description, image_url, sort_order
		FROM categories
		WHERE is_active = true
		ORDER BY sort_order, name`

	categories := []Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (r *repository) ListBrands(ctx context.Context) ([]Brand, error) {
	query := `
		SELECT id, name, slug, description, logo_url
		FROM brands
		WHERE is_active = true
		ORDER BY name`

	brands := []Brand{}
	if err := r.db.SelectContext(ctx, &brands, query); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}

	return brands, nil
}

func (r *repository) ListProductsForAdmin(
	ctx context.Context,
	limit, offset int,
) ([]AdminProductRow, int, error) {
	query := `
		SELECT p.id, p.name, p.sku, p.price, p.sale_price,
		       p.stock_quantity, p.is_active, p.is_featured,
		       b.name AS brand_name, c.name AS category_name,
		       (SELECT pi.image_url FROM product_images pi
		        WHERE pi.product_id = p.id
		        ORDER BY pi.is_primary DESC, pi.sort_order, pi.id
		        LIMIT 1) AS primary_image,
		       p.created_at
		FROM products p
		LEFT JOIN brands b ON b.id = p.brand_id
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2`

	rows := []AdminProductRow{}
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("list products for admin: %w", err)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM products`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("count products for admin: %w", err)
	}

	return rows, total, nil
}

func (r *repository) ListCategoriesForAdmin(
	ctx context.Context,
) ([]AdminCategoryRow, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.description, c.is_active, c.sort_order,
		       COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.is_active = true
		GROUP BY c.id
		ORDER BY c.sort_order, c.name`

	rows := []AdminCategoryRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list categories for admin: %w", err)
	}

	return rows, nil
}
