// SoleStyle | 2026
// dto.go

package address

type CreateAddressRequest struct {
	Type         string `json:"type"          validate:"required,oneof=shipping billing"`
	FirstName    string `json:"first_name"    validate:"required,min=1,max=100"`
	LastName     string `json:"last_name"     validate:"required,min=1,max=100"`
	AddressLine1 string `json:"address_line1" validate:"required,min=1,max=255"`
	AddressLine2 string `json:"address_line2" validate:"omitempty,max=255"`
	City         string `json:"city"          validate:"required,min=1,max=100"`
	State        string `json:"state"         validate:"required,min=1,max=100"`
	PostalCode   string `json:"postal_code"   validate:"required,min=1,max=20"`
	Country      string `json:"country"       validate:"required,min=1,max=100"`
	Phone        string `json:"phone"         validate:"omitempty,max=30"`
	IsDefault    bool   `json:"is_default"`
}
