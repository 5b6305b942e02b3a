package dto

import (
	"time"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// CreateUserRequest defines the payload for registering a new user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Name     string `json:"name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the payload for username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the API representation of a user. The password hash is
// never exposed.
type UserResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(user domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Name:      user.Name,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
