package dto

import (
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
)

// RegisterUserRequest defines data for creating a new user account.
type RegisterUserRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=64"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UpdateUserRequest defines mutable profile fields.
type UpdateUserRequest struct {
	Username    *string `json:"username,omitempty" binding:"omitempty,min=3,max=64"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UserResponse defines data returned for a user; never includes credentials.
type UserResponse struct {
	UserID      string    `json:"userID"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}
