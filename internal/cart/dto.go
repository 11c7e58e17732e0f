// SoleStyle | 2026
// dto.go

package cart

// AddItemRequest's size is optional: one-size products add without one,
// and the empty string is the stored sentinel so repeat adds still fold
// into the same line.
type AddItemRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Size      string `json:"size"      validate:"omitempty,max=20"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}
