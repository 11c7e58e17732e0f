// SoleStyle | 2026
// dto.go

package contact

type ContactRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=100"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}
