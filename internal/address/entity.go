// SoleStyle | 2026
// entity.go

package address

import "time"

type Address struct {
	ID           int64     `json:"id"            db:"id"`
	UserID       int64     `json:"-"             db:"user_id"`
	Type         string    `json:"type"          db:"type"`
	FirstName    string    `json:"first_name"    db:"first_name"`
	LastName     string    `json:"last_name"     db:"last_name"`
	AddressLine1 string    `json:"address_line1" db:"address_line1"`
	AddressLine2 *string   `json:"address_line2" db:"address_line2"`
	City         string    `json:"city"          db:"city"`
	State        string    `json:"state"         db:"state"`
	PostalCode   string    `json:"postal_code"   db:"postal_code"`
	Country      string    `json:"country"       db:"country"`
	Phone        *string   `json:"phone"         db:"phone"`
	IsDefault    bool      `json:"is_default"    db:"is_default"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}
