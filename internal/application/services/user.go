package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"user-account-api/internal/application/ports"
	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/mq"
	"user-account-api/internal/interface/api/rest/dto/user"
)

const (
	hashCost = 10

	defaultPage  = 1
	defaultLimit = 10
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// CreateUser hashes the plaintext password and inserts the record. The
// pre-check on email keeps the common case friendly; the unique index in the
// store settles concurrent creates, so the repository surfaces that violation
// as ErrEmailExists too.
func (us *UserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	existing, err := us.userRepository.FetchUserByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = string(hash)

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.publishEvent(mq.ActionCreated, uRet)
	us.mCounter.WithLabelValues("users_created_total").Inc()

	return uRet, nil
}

func (us *UserService) FindUsers(ctx context.Context, q domain.Query) (domain.Users, domain.PageMeta, error) {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	users, total, err := us.userRepository.FetchUsers(ctx, q)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}

	meta := domain.PageMeta{
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}

	return users, meta, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	return u, nil
}

// FindByEmail is a lookup, not a failure path: absence comes back as (nil, nil).
func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.User, error) {
	u, err := us.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Changing to the user's own current email is a no-op, not a conflict.
	if patch.Email != nil && *patch.Email != u.Email {
		taken, err := us.userRepository.FetchUserByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, domain.ErrEmailTaken
		}
	}

	u.Apply(patch)

	uRet, err := us.userRepository.UpdateUser(ctx, *u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		// soft-deleted between the load and the save
		return nil, domain.ErrNotFound
	}

	us.publishEvent(mq.ActionUpdated, uRet)
	us.mCounter.WithLabelValues("users_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.UUID) error {
	u, err := us.FindUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err = us.userRepository.SoftDeleteUser(ctx, id); err != nil {
		return err
	}

	us.publishEvent(mq.ActionDeleted, u)
	us.mCounter.WithLabelValues("users_deleted_total").Inc()

	return nil
}

// RestoreUser clears deleted_at first and re-fetches: an id that never
// existed falls out of the re-fetch as ErrNotFound.
func (us *UserService) RestoreUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if err := us.userRepository.RestoreUser(ctx, id); err != nil {
		return nil, err
	}

	u, err := us.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	us.publishEvent(mq.ActionRestored, u)
	us.mCounter.WithLabelValues("users_restored_total").Inc()

	return u, nil
}

func (us *UserService) ChangePassword(ctx context.Context, id domain.UUID, oldPassword, newPassword string) error {
	u, err := us.FindUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)); err != nil {
		return domain.ErrInvalidOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), hashCost)
	if err != nil {
		return err
	}

	if err = us.userRepository.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}

	us.mCounter.WithLabelValues("passwords_changed_total").Inc()

	return nil
}

func (us *UserService) publishEvent(action string, u *domain.User) {
	if u == nil {
		return
	}
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		UserID:  u.ID.String(),
		Payload: user.ToResponseUser(*u),
	}
}
