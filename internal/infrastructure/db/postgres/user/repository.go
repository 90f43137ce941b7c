package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
)

// DB is the slice of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&u.Phone,
		&u.Role,
		&u.IsActive,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// buildListFilter renders the optional listing conditions as an " AND ..."
// suffix with positional args continuing from $1.
func buildListFilter(q domain.Query) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		fmt.Fprintf(&sb, " AND (first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", n, n, n)
	}
	if q.Role != "" {
		args = append(args, q.Role)
		fmt.Fprintf(&sb, " AND role = $%d", len(args))
	}
	if q.IsActive != nil {
		args = append(args, *q.IsActive)
		fmt.Fprintf(&sb, " AND is_active = $%d", len(args))
	}

	return sb.String(), args
}

func (r *Repository) FetchUsers(ctx context.Context, q domain.Query) (domain.Users, int64, error) {
	filter, args := buildListFilter(q)

	var total int64
	if err := r.db.QueryRow(ctx, CountUsersBase+filter, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, q.Limit, q.Offset())
	list := fmt.Sprintf(
		"%s%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		SelectUsersBase, filter, len(args)+1, len(args)+2,
	)

	rows, err := r.db.Query(ctx, list, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(us), total, nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.FirstName, req.LastName, req.PasswordHash, phoneParam(req.Phone), req.Role, req.IsActive,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		UpdateUserByID,
		req.Email, req.FirstName, req.LastName, phoneParam(req.Phone), req.Role, req.IsActive, req.ID,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdatePassword(ctx context.Context, id domain.UUID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, UpdatePasswordByID, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("password update touched no rows for user %s", id)
	}

	return nil
}

func (r *Repository) SoftDeleteUser(ctx context.Context, id domain.UUID) error {
	_, err := r.db.Exec(ctx, SoftDeleteUserByID, id)
	return err
}

func (r *Repository) RestoreUser(ctx context.Context, id domain.UUID) error {
	_, err := r.db.Exec(ctx, RestoreUserByID, id)
	return err
}
