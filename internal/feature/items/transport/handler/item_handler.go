// Package handler provides the HTTP handlers for the items feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authentity "item_backend/internal/feature/auth/domain/entity"
	"item_backend/internal/feature/items/domain/entity"
	"item_backend/internal/feature/items/transport/http/dto"
	"item_backend/internal/feature/items/usecase"
	jwtmw "item_backend/internal/platform/jwt"
)

// ItemUsecase defines the item operations this handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ItemUsecase interface {
	List(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Item, error)
	Create(ctx context.Context, ownerID uint, title, description string) (*entity.Item, error)
	Get(ctx context.Context, ownerID, itemID uint) (*entity.Item, error)
	Update(ctx context.Context, ownerID, itemID uint, title, description *string) (*entity.Item, error)
	Delete(ctx context.Context, ownerID, itemID uint) error
}

// ItemHandler handles HTTP requests for item CRUD. All routes run behind the
// authorization guard, so the current user is always present in the context.
type ItemHandler struct {
	items ItemUsecase
}

// NewItemHandler creates a new ItemHandler instance.
func NewItemHandler(items ItemUsecase) *ItemHandler {
	return &ItemHandler{items: items}
}

// List handles GET /items with offset/limit pagination.
func (h *ItemHandler) List(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	offset, limit, ok := paginationParams(c)
	if !ok {
		return
	}

	items, err := h.items.List(c.Request.Context(), user.ID, offset, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemListResponse(items))
}

// Create handles POST /items. The owner is always the caller.
func (h *ItemHandler) Create(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	var req dto.ItemCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.items.Create(c.Request.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("item created", "item_id", item.ID, "owner_id", user.ID)
	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

// Get handles GET /items/:id.
func (h *ItemHandler) Get(c *gin.Context) {
	user, itemID, ok := h.callerAndItemID(c)
	if !ok {
		return
	}
	item, err := h.items.Get(c.Request.Context(), user.ID, itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

// Update handles PUT /items/:id.
func (h *ItemHandler) Update(c *gin.Context) {
	user, itemID, ok := h.callerAndItemID(c)
	if !ok {
		return
	}
	var req dto.ItemUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.items.Update(c.Request.Context(), user.ID, itemID, req.Title, req.Description)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

// Delete handles DELETE /items/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	user, itemID, ok := h.callerAndItemID(c)
	if !ok {
		return
	}
	if err := h.items.Delete(c.Request.Context(), user.ID, itemID); err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("item deleted", "item_id", itemID, "owner_id", user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
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

// callerAndItemID resolves the guard user and the :id path parameter,
// answering the error response itself when either is unusable.
func (h *ItemHandler) callerAndItemID(c *gin.Context) (user *authentity.User, itemID uint, ok bool) {
	u, found := jwtmw.CurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return nil, 0, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return nil, 0, false
	}
	return u, uint(id), true
}

// writeError maps usecase errors to the HTTP taxonomy: missing items are 404,
// foreign items are 403 (never 404), everything else is an opaque 500.
func (h *ItemHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
	default:
		slog.Error("item operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
