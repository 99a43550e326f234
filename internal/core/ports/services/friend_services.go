package services

import (
	"context"

	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/afnan006/LogUp/internal/dto"
)

// FriendSvcFacade defines operations on a user's friends.
type FriendSvcFacade interface {
	// CreateFriend adds a friend for userID.
	CreateFriend(ctx context.Context, userID string, req dto.CreateFriendRequest) (*domain.Friend, error)

	// GetFriendByID retrieves a friend owned by userID.
	GetFriendByID(ctx context.Context, friendID, userID string) (*domain.Friend, error)

	// ListFriends retrieves a page of friends owned by userID.
	ListFriends(ctx context.Context, userID string, limit, offset int) ([]domain.Friend, error)

	// UpdateFriend replaces a friend's mutable fields.
	UpdateFriend(ctx context.Context, friendID, userID string, req dto.UpdateFriendRequest) (*domain.Friend, error)

	// DeleteFriend removes a friend; debts that referenced it are orphaned,
	// not deleted.
	DeleteFriend(ctx context.Context, friendID, userID string) error
}
