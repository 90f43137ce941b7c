package user

import "errors"

// Raised at the point of detection inside the service layer (or mapped from a
// store unique-constraint violation) and matched with errors.Is at the REST
// boundary. ErrEmailExists and ErrEmailTaken are the same uniqueness
// violation, worded differently for create and update.
var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidOldPassword = errors.New("old password is incorrect")
)
