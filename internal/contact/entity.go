// SoleStyle | 2026
// entity.go

package contact

import "time"

type Message struct {
	ID        int64     `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	Subject   *string   `json:"subject"    db:"subject"`
	Message   string    `json:"message"    db:"message"`
	IsRead    bool      `json:"is_read"    db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
