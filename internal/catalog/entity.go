// SoleStyle | 2026
// entity.go

package catalog

import "time"

type Category struct {
	ID          int64   `json:"id"          db:"id"`
	Name        string  `json:"name"        db:"name"`
	Slug        string  `json:"slug"        db:"slug"`
	Description *string `json:"description" db:"description"`
	ImageURL    *string `json:"image_url"   db:"image_url"`
	SortOrder   int     `json:"sort_order"  db:"sort_order"`
}

type Brand struct {
	ID          int64   `json:"id"          db:"id"`
	Name        string  `json:"name"        db:"name"`
	Slug        string  `json:"slug"        db:"slug"`
	Description *string `json:"description" db:"description"`
	LogoURL     *string `json:"logo_url"    db:"logo_url"`
}

type ProductImage struct {
	ID        int64   `json:"id"         db:"id"`
	ImageURL  string  `json:"image_url"  db:"image_url"`
	AltText   *string `json:"alt_text"   db:"alt_text"`
	IsPrimary bool    `json:"is_primary" db:"is_primary"`
	SortOrder int     `json:"sort_order" db:"sort_order"`
}

type ProductSize struct {
	Size          string `json:"size"           db:"size"`
	StockQuantity int    `json:"stock_quantity" db:"stock_quantity"`
}

type Review struct {
	ID        int64     `json:"id"         db:"id"`
	Rating    int       `json:"rating"     db:"rating"`
	Title     *string   `json:"title"      db:"title"`
	Comment   *string   `json:"comment"    db:"comment"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name"  db:"last_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ProductSummary is one row of the storefront grid: the product joined
// with its brand, category, primary image and review aggregates.
type ProductSummary struct {
	ID            int64     `json:"id"             db:"id"`
	Name          string    `json:"name"           db:"name"`
	Slug          string    `json:"slug"           db:"slug"`
	Description   *string   `json:"description"    db:"description"`
	Price         float64   `json:"price"          db:"price"`
	SalePrice     *float64  `json:"sale_price"     db:"sale_price"`
	Gender        string    `json:"gender"         db:"gender"`
	StockQuantity int       `json:"stock_quantity" db:"stock_quantity"`
	IsFeatured    bool      `json:"is_featured"    db:"is_featured"`
	BrandName     *string   `json:"brand_name"     db:"brand_name"`
	CategoryName  *string   `json:"category_name"  db:"category_name"`
	PrimaryImage  *string   `json:"primary_image"  db:"primary_image"`
	AverageRating float64   `json:"average_rating" db:"average_rating"`
	ReviewCount   int       `json:"review_count"   db:"review_count"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
}

// AdminProductRow is the dashboard inventory view.
type AdminProductRow struct {
	ID            int64     `json:"id"             db:"id"`
	Name          string    `json:"name"           db:"name"`
	SKU           string    `json:"sku"            db:"sku"`
	Price         float64   `json:"price"          db:"price"`
	SalePrice     *float64  `json:"sale_price"     db:"sale_price"`
	StockQuantity int       `json:"stock_quantity" db:"stock_quantity"`
	IsActive      bool      `json:"is_active"      db:"is_active"`
	IsFeatured    bool      `json:"is_featured"    db:"is_featured"`
	BrandName     *string   `json:"brand_name"     db:"brand_name"`
	CategoryName  *string   `json:"category_name"  db:"category_name"`
	PrimaryImage  *string   `json:"primary_image"  db:"primary_image"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
}

// AdminCategoryRow includes inactive categories and per-category product
// counts for the dashboard.
type AdminCategoryRow struct {
	ID           int64   `json:"id"            db:"id"`
	Name         string  `json:"name"          db:"name"`
	Slug         string  `json:"slug"          db:"slug"`
	Description  *string `json:"description"   db:"description"`
	IsActive     bool    `json:"is_active"     db:"is_active"`
	SortOrder    int     `json:"sort_order"    db:"sort_order"`
	ProductCount int     `json:"product_count" db:"product_count"`
}
