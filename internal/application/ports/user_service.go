package ports

import (
	"context"

	"user-account-api/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, u user.User, password string) (*user.User, error)
	FindUsers(ctx context.Context, q user.Query) (user.Users, user.PageMeta, error)
	FindUserByID(ctx context.Context, id user.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateUser(ctx context.Context, id user.UUID, patch user.Patch) (*user.User, error)
	DeleteUser(ctx context.Context, id user.UUID) error
	RestoreUser(ctx context.Context, id user.UUID) (*user.User, error)
	ChangePassword(ctx context.Context, id user.UUID, oldPassword, newPassword string) error
}
