// SoleStyle | 2026
// entity.go

package cart

import "time"

// Line is a cart row joined with the product it points at, so the client
// can render price, availability and the thumbnail without extra calls.
type Line struct {
	ID            int64     `json:"id"             db:"id"`
	ProductID     int64     `json:"product_id"     db:"product_id"`
	Name          string    `json:"name"           db:"name"`
	Slug          string    `json:"slug"           db:"slug"`
	Price         float64   `json:"price"          db:"price"`
	SalePrice     *float64  `json:"sale_price"     db:"sale_price"`
	Size          string    `json:"size"           db:"size"`
	Quantity      int       `json:"quantity"       db:"quantity"`
	StockQuantity int       `json:"stock_quantity" db:"stock_quantity"`
	PrimaryImage  *string   `json:"primary_image"  db:"primary_image"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
}
