package user

import (
	domain "user-account-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var phone string
	if model.Phone != nil {
		phone = *model.Phone
	}

	return &domain.User{
		ID:           model.ID,
		Email:        model.Email,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		PasswordHash: model.PasswordHash,
		Phone:        phone,
		Role:         model.Role,
		IsActive:     model.IsActive,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}

// phoneParam maps the empty string to NULL so the phone column stays optional.
func phoneParam(phone string) *string {
	if phone == "" {
		return nil
	}
	return &phone
}
