package user

type (
	CreateRequest struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Password  string `json:"password"`
		Phone     string `json:"phone"`
		Role      string `json:"role"`
		IsActive  *bool  `json:"isActive"`
	}

	// UpdateRequest is a partial CreateRequest; absent fields stay nil and
	// are not applied.
	UpdateRequest struct {
		Email     *string `json:"email"`
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Phone     *string `json:"phone"`
		Role      *string `json:"role"`
		IsActive  *bool   `json:"isActive"`
	}

	ChangePasswordRequest struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
)
