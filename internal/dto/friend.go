package dto

import (
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
)

// CreateFriendRequest defines data for adding a friend.
type CreateFriendRequest struct {
	Name        string  `json:"name" binding:"required,max=128"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	AvatarURL   *string `json:"avatarURL,omitempty"`
	IsOnline    bool    `json:"isOnline"`
}

// UpdateFriendRequest defines a full replace of a friend's mutable fields.
type UpdateFriendRequest struct {
	Name        string  `json:"name" binding:"required,max=128"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	AvatarURL   *string `json:"avatarURL,omitempty"`
	IsOnline    bool    `json:"isOnline"`
}

// FriendResponse defines data returned for a friend.
type FriendResponse struct {
	FriendID    string    `json:"friendID"`
	Name        string    `json:"name"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	AvatarURL   *string   `json:"avatarURL,omitempty"`
	IsOnline    bool      `json:"isOnline"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToFriendResponse converts a domain.Friend to FriendResponse.
func ToFriendResponse(f *domain.Friend) FriendResponse {
	return FriendResponse{
		FriendID:    f.FriendID,
		Name:        f.Name,
		PhoneNumber: f.PhoneNumber,
		AvatarURL:   f.AvatarURL,
		IsOnline:    f.IsOnline,
		CreatedAt:   f.CreatedAt,
	}
}

// ListFriendsResponse wraps a list of friends.
type ListFriendsResponse struct {
	Friends []FriendResponse `json:"friends"`
}

// ToListFriendsResponse converts a slice of domain.Friend to DTO.
func ToListFriendsResponse(fs []domain.Friend) ListFriendsResponse {
	list := make([]FriendResponse, len(fs))
	for i, f := range fs {
		list[i] = ToFriendResponse(&f)
	}
	return ListFriendsResponse{Friends: list}
}
