package usecase

import (
	"context"
	"errors"

	"item_backend/internal/feature/auth/domain/entity"
)

const (
	// defaultListLimit caps user listings when the caller does not set one.
	defaultListLimit = 100
)

// UserRepository abstracts the persistence layer for user profile operations.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by ID. It returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a user by email. It returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a user by username. It returns ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// List retrieves a page of users ordered by ID.
	List(ctx context.Context, offset, limit int) ([]entity.User, error)
}

// UserUsecase provides profile reads and the current-user update flow.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// UpdateMe applies the non-nil fields to the caller's own profile.
// Email and username changes are checked for uniqueness against other users.
func (u *UserUsecase) UpdateMe(ctx context.Context, current *entity.User, email, username, fullName *string) (*entity.User, error) {
	if email != nil && *email != current.Email {
		if err := u.ensureFree(ctx, u.users.FindByEmail, *email, current.ID, ErrEmailTaken); err != nil {
			return nil, err
		}
		current.Email = *email
	}
	if username != nil && *username != current.Username {
		if err := u.ensureFree(ctx, u.users.FindByUsername, *username, current.ID, ErrUsernameTaken); err != nil {
			return nil, err
		}
		current.Username = *username
	}
	if fullName != nil {
		current.FullName = *fullName
	}

	if err := u.users.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// List returns a page of all users.
func (u *UserUsecase) List(ctx context.Context, offset, limit int) ([]entity.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return u.users.List(ctx, offset, limit)
}

// GetByID returns a single user by ID.
func (u *UserUsecase) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// ensureFree verifies that the value is not held by a different user.
func (u *UserUsecase) ensureFree(ctx context.Context, find func(context.Context, string) (*entity.User, error), value string, selfID uint, conflict error) error {
	other, err := find(ctx, value)
	if err == nil && other.ID != selfID {
		return conflict
	}
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}
	return nil
}
