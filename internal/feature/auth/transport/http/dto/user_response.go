package dto

import "item_backend/internal/feature/auth/domain/entity"

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
