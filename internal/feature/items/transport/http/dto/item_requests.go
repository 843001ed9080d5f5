// Package dto defines data transfer objects for the items feature's HTTP transport layer.
package dto

// ItemCreateReq represents the request body for creating an item.
type ItemCreateReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// ItemUpdateReq represents the request body for a partial item update.
// nil fields are left untouched.
type ItemUpdateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
