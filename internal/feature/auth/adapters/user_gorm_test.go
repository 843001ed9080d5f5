package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"item_backend/internal/feature/auth/domain/entity"
	"item_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError matches the production connection so unique violations
// surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestUser(email, username string) *entity.User {
	return &entity.User{
		Email:          email,
		Username:       username,
		HashedPassword: "hashed_password",
		IsActive:       true,
	}
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user := newTestUser("test@example.com", "testuser")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		require.NoError(t, repo.Create(context.Background(), newTestUser("dup@example.com", "first")))

		err := repo.Create(context.Background(), newTestUser("dup@example.com", "second"))
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

		// No second row was created
		var count int64
		repo.db.Model(&entity.User{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("duplicate username error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		require.NoError(t, repo.Create(context.Background(), newTestUser("a@example.com", "dupname")))

		// A fresh email with a taken username must not be reported as an
		// email conflict.
		err := repo.Create(context.Background(), newTestUser("b@example.com", "dupname"))
		assert.ErrorIs(t, err, usecase.ErrUsernameAlreadyExists)
	})
}

func TestUserGorm_Find(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	seeded := newTestUser("test@example.com", "testuser")
	require.NoError(t, repo.Create(context.Background(), seeded))

	t.Run("find by email", func(t *testing.T) {
		user, err := repo.FindByEmail(context.Background(), "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
		assert.Equal(t, "testuser", user.Username)
	})

	t.Run("find by username", func(t *testing.T) {
		user, err := repo.FindByUsername(context.Background(), "testuser")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
	})

	t.Run("find by id", func(t *testing.T) {
		user, err := repo.FindByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("missing users map to ErrUserNotFound", func(t *testing.T) {
		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)

		_, err = repo.FindByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)

		_, err = repo.FindByID(context.Background(), 9999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
