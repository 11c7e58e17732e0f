// SoleStyle | 2026
// entity.go

package order

import "time"

type Order struct {
	ID            int64       `json:"id"             db:"id"`
	OrderNumber   string      `json:"order_number"   db:"order_number"`
	Status        string      `json:"status"         db:"status"`
	PaymentStatus string      `json:"payment_status" db:"payment_status"`
	TotalAmount   float64     `json:"total_amount"   db:"total_amount"`
	CreatedAt     time.Time   `json:"created_at"     db:"created_at"`
	Items         []OrderItem `json:"items"          db:"-"`
}

type OrderItem struct {
	ID          int64   `json:"id"           db:"id"`
	OrderID     int64   `json:"-"            db:"order_id"`
	ProductName string  `json:"product_name" db:"product_name"`
	Size        string  `json:"size"         db:"size"`
	Quantity    int     `json:"quantity"     db:"quantity"`
	Price       float64 `json:"price"        db:"price"`
}

// AdminOrderRow joins the customer identity onto the order for the
// dashboard views.
type AdminOrderRow struct {
	ID            int64     `json:"id"             db:"id"`
	OrderNumber   string    `json:"order_number"   db:"order_number"`
	Status        string    `json:"status"         db:"status"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	TotalAmount   float64   `json:"total_amount"   db:"total_amount"`
	FirstName     string    `json:"first_name"     db:"first_name"`
	LastName      string    `json:"last_name"      db:"last_name"`
	ItemCount     int       `json:"item_count"     db:"item_count"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
}

// Overview is the account dashboard summary. The wishlist is not stored
// server-side, so its count is always zero.
type Overview struct {
	RecentOrders  []Order `json:"recentOrders"`
	TotalOrders   int     `json:"totalOrders"`
	TotalSpent    float64 `json:"totalSpent"`
	WishlistItems int     `json:"wishlistItems"`
}
