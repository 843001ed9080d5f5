package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"item_backend/internal/feature/auth/domain/entity"
	"item_backend/internal/platform/security"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists or ErrUsernameAlreadyExists when a
	// unique constraint is violated.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound when the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a user matching the specified username.
	// It returns ErrUserNotFound when the user does not exist.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound when the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer creates signed bearer tokens for authenticated users.
type TokenIssuer interface {
	// Issue creates a signed token whose subject is the user ID and returns
	// it together with its absolute expiry.
	Issue(userID uint) (string, time.Time, error)
}

// authUsecase implements the registration and login flow.
type authUsecase struct {
	users      UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, bcryptCost int) *authUsecase {
	return &authUsecase{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new active user with a hashed password. Email and
// username uniqueness are pre-checked against storage; the unique constraint
// on the table is the backstop for concurrent registrations.
func (u *authUsecase) Register(ctx context.Context, email, username, password, fullName string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := security.HashPassword(password, u.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:          email,
		Username:       username,
		HashedPassword: hashed,
		FullName:       fullName,
		IsActive:       true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by email and password and issues a bearer token.
// The bcrypt comparison runs even when the user does not exist so that
// response timing does not reveal which emails are registered.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := u.users.FindByEmail(ctx, email)

	digest := security.DummyDigest
	if err == nil {
		digest = user.HashedPassword
	}

	ok, verifyErr := security.VerifyPassword(digest, password)
	if verifyErr != nil {
		return "", time.Time{}, fmt.Errorf("failed to verify password: %w", verifyErr)
	}
	if err != nil || !ok {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", time.Time{}, ErrInactiveUser
	}

	token, expiresAt, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, expiresAt, nil
}
