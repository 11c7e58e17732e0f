// SoleStyle | 2026
// dto.go

package user

import "time"

type UpdateProfileRequest struct {
	FirstName   string `json:"firstName"   validate:"required,min=1,max=100"`
	LastName    string `json:"lastName"    validate:"required,min=1,max=100"`
	Phone       string `json:"phone"       validate:"omitempty,max=30"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender"      validate:"omitempty,oneof=male female other"`
}

type ProfileResponse struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       *string    `json:"phone"`
	DateOfBirth *string    `json:"date_of_birth"`
	Gender      *string    `json:"gender"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AdminUserRow is the flattened shape the dashboard user list renders.
type AdminUserRow struct {
	ID        int64      `json:"id"         db:"id"`
	Username  string     `json:"username"   db:"username"`
	Email     string     `json:"email"      db:"email"`
	FirstName string     `json:"first_name" db:"first_name"`
	LastName  string     `json:"last_name"  db:"last_name"`
	IsActive  bool       `json:"is_active"  db:"is_active"`
	LastLogin *time.Time `json:"last_login" db:"last_login"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

func toProfileResponse(a *Account) *ProfileResponse {
	resp := &ProfileResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt,
	}

	if a.Phone.Valid {
		resp.Phone = &a.Phone.String
	}
	if a.DateOfBirth.Valid {
		dob := a.DateOfBirth.Time.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	if a.Gender.Valid {
		resp.Gender = &a.Gender.String
	}
	if a.LastLogin.Valid {
		resp.LastLogin = &a.LastLogin.Time
	}

	return resp
}
