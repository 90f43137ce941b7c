package user

import (
	"user-account-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		ID:        uDomain.ID,
		Email:     uDomain.Email,
		FirstName: uDomain.FirstName,
		LastName:  uDomain.LastName,
		Phone:     uDomain.Phone,
		Role:      uDomain.Role,
		IsActive:  uDomain.IsActive,
		CreatedAt: uDomain.CreatedAt,
		UpdatedAt: uDomain.UpdatedAt,
	}
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// ToDomainUser applies the creation defaults: role "user", active true.
func ToDomainUser(req CreateRequest) user.User {
	u := user.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
		IsActive:  true,
	}
	if u.Role == "" {
		u.Role = user.RoleUser
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	return u
}

func ToDomainPatch(req UpdateRequest) user.Patch {
	return user.Patch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
		IsActive:  req.IsActive,
	}
}
