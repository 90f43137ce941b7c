package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID
		Email        string
		FirstName    string
		LastName     string
		PasswordHash string
		Phone        *string
		Role         string
		IsActive     bool

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User
)
