package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"item_backend/internal/feature/auth/domain/entity"
	"item_backend/internal/feature/auth/usecase"
)

// Context keys under which the guard stores the resolved identity.
const (
	ContextUser   = "currentUser"
	ContextUserID = "userID"
)

// TokenValidator verifies a bearer token and extracts the subject user ID.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider.
type TokenValidator interface {
	Validate(token string) (uint, error)
}

// UserFinder loads a user by ID so the guard can check the account state.
// Absent users are reported as usecase.ErrUserNotFound; any other error is
// an infrastructure fault.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a gin middleware that resolves the request's bearer
// token to an active user, or aborts with 401. The response body is the same
// for every failure; the actual cause is only logged.
func AuthRequired(tokens TokenValidator, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			slog.Warn("auth guard rejected request", "reason", "missing bearer token", "remote_addr", c.ClientIP())
			abortUnauthorized(c)
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := tokens.Validate(tokenStr)
		if err != nil {
			slog.Warn("auth guard rejected request", "reason", "token validation failed", "error", err, "remote_addr", c.ClientIP())
			abortUnauthorized(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			// Only an absent subject is a credential problem. A storage
			// fault must not look like a rejected login.
			if errors.Is(err, usecase.ErrUserNotFound) {
				slog.Warn("auth guard rejected request", "reason", "subject not found", "user_id", userID, "remote_addr", c.ClientIP())
				abortUnauthorized(c)
				return
			}
			slog.Error("auth guard user lookup failed", "user_id", userID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !user.IsActive {
			slog.Warn("auth guard rejected request", "reason", "inactive user", "user_id", userID, "remote_addr", c.ClientIP())
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Next()
	}
}

// CurrentUser returns the guard-resolved user from the gin context.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
}
