package services

import (
	"context"
	"fmt"
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	portssvc "github.com/afnan006/LogUp/internal/core/ports/services"
	"github.com/afnan006/LogUp/internal/dto"
	"github.com/google/uuid"
)

// friendService manages a user's friends. Deletion orphans dependent debts
// (their friend link is nulled) rather than cascading into them.
type friendService struct {
	BaseService
	friendRepo portsrepo.FriendRepository
}

// NewFriendService creates a new friend service.
func NewFriendService(friendRepo portsrepo.FriendRepository) portssvc.FriendSvcFacade {
	return &friendService{friendRepo: friendRepo}
}

var _ portssvc.FriendSvcFacade = (*friendService)(nil)

func (s *friendService) CreateFriend(ctx context.Context, userID string, req dto.CreateFriendRequest) (*domain.Friend, error) {
	now := time.Now()
	friend := domain.Friend{
		FriendID:    uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		AvatarURL:   req.AvatarURL,
		IsOnline:    req.IsOnline,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.friendRepo.SaveFriend(ctx, friend); err != nil {
		s.LogError(ctx, err, "Failed to save friend")
		return nil, fmt.Errorf("failed to create friend: %w", err)
	}

	s.LogInfo(ctx, "Friend created", "friend_id", friend.FriendID)
	return &friend, nil
}

func (s *friendService) GetFriendByID(ctx context.Context, friendID, userID string) (*domain.Friend, error) {
	return s.friendRepo.FindFriendByID(ctx, friendID, userID)
}

func (s *friendService) ListFriends(ctx context.Context, userID string, limit, offset int) ([]domain.Friend, error) {
	friends, err := s.friendRepo.ListFriends(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return friends, nil
}

func (s *friendService) UpdateFriend(ctx context.Context, friendID, userID string, req dto.UpdateFriendRequest) (*domain.Friend, error) {
	friend, err := s.friendRepo.FindFriendByID(ctx, friendID, userID)
	if err != nil {
		return nil, err
	}

	friend.Name = req.Name
	friend.PhoneNumber = req.PhoneNumber
	friend.AvatarURL = req.AvatarURL
	friend.IsOnline = req.IsOnline
	friend.LastUpdatedAt = time.Now()
	friend.LastUpdatedBy = userID

	if err := s.friendRepo.UpdateFriend(ctx, *friend); err != nil {
		s.LogError(ctx, err, "Failed to update friend", "friend_id", friendID)
		return nil, fmt.Errorf("failed to update friend %s: %w", friendID, err)
	}
	return friend, nil
}

func (s *friendService) DeleteFriend(ctx context.Context, friendID, userID string) error {
	if err := s.friendRepo.DeleteFriend(ctx, friendID, userID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Friend deleted, dependent debts orphaned", "friend_id", friendID)
	return nil
}
