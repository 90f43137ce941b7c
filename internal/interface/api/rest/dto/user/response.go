package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the outward representation; the password hash never crosses this
// boundary.
type (
	User struct {
		ID        uuid.UUID `json:"id"`
		Email     string    `json:"email"`
		FirstName string    `json:"firstName"`
		LastName  string    `json:"lastName"`
		Phone     string    `json:"phone,omitempty"`
		Role      string    `json:"role"`
		IsActive  bool      `json:"isActive"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	Users []User
)
