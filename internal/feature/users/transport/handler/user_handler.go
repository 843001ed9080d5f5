// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"item_backend/internal/feature/auth/domain/entity"
	"item_backend/internal/feature/users/transport/http/dto"
	"item_backend/internal/feature/users/usecase"
	jwtmw "item_backend/internal/platform/jwt"
)

// UserUsecase defines the profile operations this handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	UpdateMe(ctx context.Context, current *entity.User, email, username, fullName *string) (*entity.User, error)
	List(ctx context.Context, offset, limit int) ([]entity.User, error)
	GetByID(ctx context.Context, id uint) (*entity.User, error)
}

// UserHandler handles HTTP requests for user profiles. All routes run behind
// the authorization guard.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /users/me, returning the guard-resolved caller.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateMe handles PUT /users/me with a partial profile update.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	var req dto.UserUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.users.UpdateMe(c.Request.Context(), user, req.Email, req.Username, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("profile update failed", "error", err, "user_id", user.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	slog.Info("profile updated", "user_id", updated.ID)
	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// List handles GET /users with offset/limit pagination.
func (h *UserHandler) List(c *gin.Context) {
	offset, limit, ok := paginationParams(c)
	if !ok {
		return
	}

	users, err := h.users.List(c.Request.Context(), offset, limit)
	if err != nil {
		slog.Error("user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// paginationParams parses the skip/limit query values, answering 400 itself
// when either is not an integer.
func paginationParams(c *gin.Context) (offset, limit int, ok bool) {
	offset, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be an integer"})
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return 0, 0, false
	}
	return offset, limit, true
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("user lookup failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
