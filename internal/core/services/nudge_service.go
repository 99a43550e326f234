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

// nudgeService manages the reminders surfaced to a user.
type nudgeService struct {
	BaseService
	nudgeRepo portsrepo.NudgeRepository
}

// NewNudgeService creates a new nudge service.
func NewNudgeService(nudgeRepo portsrepo.NudgeRepository) portssvc.NudgeSvcFacade {
	return &nudgeService{nudgeRepo: nudgeRepo}
}

var _ portssvc.NudgeSvcFacade = (*nudgeService)(nil)

func (s *nudgeService) CreateNudge(ctx context.Context, userID string, req dto.CreateNudgeRequest) (*domain.Nudge, error) {
	now := time.Now()
	nudge := domain.Nudge{
		NudgeID: uuid.NewString(),
		UserID:  userID,
		Type:    req.Type,
		Content: req.Content,
		Status:  domain.NudgeActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.nudgeRepo.SaveNudge(ctx, nudge); err != nil {
		s.LogError(ctx, err, "Failed to save nudge")
		return nil, fmt.Errorf("failed to create nudge: %w", err)
	}
	return &nudge, nil
}

func (s *nudgeService) ListNudges(ctx context.Context, userID string, limit, offset int) ([]domain.Nudge, error) {
	nudges, err := s.nudgeRepo.ListNudges(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list nudges: %w", err)
	}
	return nudges, nil
}

func (s *nudgeService) DismissNudge(ctx context.Context, nudgeID, userID string) (*domain.Nudge, error) {
	nudge, err := s.nudgeRepo.DismissNudge(ctx, nudgeID, userID, time.Now())
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Nudge dismissed", "nudge_id", nudgeID)
	return nudge, nil
}
