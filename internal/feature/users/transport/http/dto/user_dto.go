// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import "item_backend/internal/feature/auth/domain/entity"

// UserUpdateReq represents the request body for PUT /users/me.
// nil fields are left untouched.
type UserUpdateReq struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
}

// UserResponse is the outward representation of a user.
// The password digest is deliberately absent.
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

// NewUserResponse maps a user entity to its outward representation.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		FullName: u.FullName,
		IsActive: u.IsActive,
	}
}

// NewUserListResponse maps a slice of user entities, always returning a
// non-nil slice so empty pages serialize as [].
func NewUserListResponse(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
