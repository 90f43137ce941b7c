package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type (
	UUID = uuid.UUID
	User struct {
		ID           UUID
		Email        string
		FirstName    string
		LastName     string
		PasswordHash string
		Phone        string
		Role         string
		IsActive     bool

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User
)

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *string
	IsActive  *bool
}

func (u *User) Apply(p Patch) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}

// Query is the listing filter: the search group matches first name, last name
// or email as a case-insensitive substring; role and IsActive narrow the
// result further.
type Query struct {
	Search   string
	Role     string
	IsActive *bool
	Page     int
	Limit    int
}

func (q Query) Offset() int { return (q.Page - 1) * q.Limit }

type PageMeta struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
