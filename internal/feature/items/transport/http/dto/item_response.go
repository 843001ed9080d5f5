package dto

import "item_backend/internal/feature/items/domain/entity"

// ItemResponse is the outward representation of an item.
type ItemResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id"`
}

// NewItemResponse maps an item entity to its outward representation.
func NewItemResponse(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		OwnerID:     i.OwnerID,
	}
}

// NewItemListResponse maps a slice of item entities, always returning a
// non-nil slice so empty pages serialize as [].
func NewItemListResponse(items []entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewItemResponse(&items[i]))
	}
	return out
}
