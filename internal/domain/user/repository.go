package user

import (
	"context"
)

// Repository is pure persistence; no business validation happens here.
// Fetch operations see live (non-soft-deleted) rows only and report absence
// as (nil, nil). RestoreUser clears deleted_at by id regardless of the
// current lifecycle state.
type Repository interface {
	FetchUserByID(ctx context.Context, id UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchUsers(ctx context.Context, q Query) (Users, int64, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	UpdatePassword(ctx context.Context, id UUID, passwordHash string) error
	SoftDeleteUser(ctx context.Context, id UUID) error
	RestoreUser(ctx context.Context, id UUID) error
}
