package repositories

import (
	"context"

	"github.com/afnan006/LogUp/internal/core/domain"
)

// FriendRepository defines persistence operations for friends. All lookups
// are scoped by the owning user; a friend belonging to someone else is
// reported as not found.
type FriendRepository interface {
	// SaveFriend persists a new friend.
	SaveFriend(ctx context.Context, friend domain.Friend) error

	// FindFriendByID retrieves a friend owned by userID.
	FindFriendByID(ctx context.Context, friendID, userID string) (*domain.Friend, error)

	// ListFriends retrieves a page of friends owned by userID.
	ListFriends(ctx context.Context, userID string, limit, offset int) ([]domain.Friend, error)

	// UpdateFriend replaces a friend's mutable fields.
	UpdateFriend(ctx context.Context, friend domain.Friend) error

	// DeleteFriend removes the friend and, in the same transaction, nulls the
	// friend link on every debt that referenced it. The debts themselves survive.
	DeleteFriend(ctx context.Context, friendID, userID string) error
}
