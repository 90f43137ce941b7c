package user

const userColumns = `id, email, first_name, last_name, password_hash, phone, role, is_active, created_at, updated_at, deleted_at`

const (
	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (email, first_name, last_name, password_hash, phone, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns + `
	`
	UpdateUserByID = `
		UPDATE users
		SET email = $1,
		    first_name = $2,
		    last_name = $3,
		    phone = $4,
		    role = $5,
		    is_active = $6,
		    updated_at = now()
		WHERE id = $7 AND deleted_at IS NULL
		RETURNING ` + userColumns + `
	`
	UpdatePasswordByID = `
		UPDATE users
		SET password_hash = $1, updated_at = now()
		WHERE id = $2 AND deleted_at IS NULL
	`
	SoftDeleteUserByID = `
		UPDATE users
		SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	RestoreUserByID = `
		UPDATE users
		SET deleted_at = NULL, updated_at = now()
		WHERE id = $1
	`

	// The listing pair shares a dynamically built filter suffix, see
	// buildListFilter.
	SelectUsersBase = `
		SELECT ` + userColumns + `
		FROM users
		WHERE deleted_at IS NULL`
	CountUsersBase = `
		SELECT count(*)
		FROM users
		WHERE deleted_at IS NULL`
)
