package response

// Outward-facing wordings. "Already exists" (create) and "already taken"
// (update) are kept distinct on purpose.
const (
	MsgUserCreated     = "User created successfully"
	MsgUsersFetched    = "Users retrieved successfully"
	MsgUserFound       = "User retrieved successfully"
	MsgUserUpdated     = "User updated successfully"
	MsgUserDeleted     = "User deleted successfully"
	MsgUserRestored    = "User restored successfully"
	MsgPasswordChanged = "Password changed successfully"

	MsgUserNotFound       = "User not found"
	MsgEmailExists        = "User with this email already exists"
	MsgEmailTaken         = "Email already taken"
	MsgInvalidOldPassword = "Old password is incorrect"
	MsgValidationFailed   = "Validation failed"
	MsgUnauthorized       = "Unauthorized access"
	MsgInternalError      = "Internal server error"
)

const (
	CodeConflict           = "CONFLICT"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInternal           = "INTERNAL_ERROR"
)
