package services

import (
	"context"
	"fmt"
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	portssvc "github.com/afnan006/LogUp/internal/core/ports/services"
	"github.com/afnan006/LogUp/internal/dto"
	"github.com/afnan006/LogUp/internal/utils/splitting"
	"github.com/google/uuid"
)

// splitExpenseService manages split expenses. Shares are derived and
// validated by the splitting package before every persist; the store never
// receives a participant list that violates the sum invariant.
type splitExpenseService struct {
	BaseService
	splitRepo portsrepo.SplitExpenseRepository
}

// NewSplitExpenseService creates a new split expense service.
func NewSplitExpenseService(splitRepo portsrepo.SplitExpenseRepository) portssvc.SplitExpenseSvcFacade {
	return &splitExpenseService{splitRepo: splitRepo}
}

var _ portssvc.SplitExpenseSvcFacade = (*splitExpenseService)(nil)

func toShareInputs(inputs []dto.SplitParticipantInput) []splitting.ShareInput {
	shareInputs := make([]splitting.ShareInput, len(inputs))
	for i, in := range inputs {
		shareInputs[i] = splitting.ShareInput{
			ParticipantID: in.ParticipantID,
			AmountPaid:    in.AmountPaid,
			ShareAmount:   in.ShareAmount,
			Percentage:    in.Percentage,
		}
	}
	return shareInputs
}

func (s *splitExpenseService) CreateSplitExpense(ctx context.Context, userID string, req dto.CreateSplitExpenseRequest) (*domain.SplitExpense, error) {
	splitType := domain.SplitType(req.SplitType)
	participants, err := splitting.DeriveShares(req.TotalAmount, splitType, toShareInputs(req.Participants))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	split := domain.SplitExpense{
		SplitID:      uuid.NewString(),
		UserID:       userID,
		Description:  req.Description,
		TotalAmount:  req.TotalAmount,
		SplitType:    splitType,
		Participants: participants,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.splitRepo.SaveSplitExpense(ctx, split); err != nil {
		s.LogError(ctx, err, "Failed to save split expense")
		return nil, fmt.Errorf("failed to create split expense: %w", err)
	}

	s.LogInfo(ctx, "Split expense created", "split_id", split.SplitID, "split_type", req.SplitType)
	return &split, nil
}

func (s *splitExpenseService) GetSplitExpenseByID(ctx context.Context, splitID, userID string) (*domain.SplitExpense, error) {
	return s.splitRepo.FindSplitExpenseByID(ctx, splitID, userID)
}

func (s *splitExpenseService) ListSplitExpenses(ctx context.Context, userID string, limit, offset int) ([]domain.SplitExpense, error) {
	splits, err := s.splitRepo.ListSplitExpenses(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list split expenses: %w", err)
	}
	return splits, nil
}

// UpdateSplitExpense is a full-record replace: the incoming request goes
// through exactly the same derivation as create, then overwrites the row.
func (s *splitExpenseService) UpdateSplitExpense(ctx context.Context, splitID, userID string, req dto.UpdateSplitExpenseRequest) (*domain.SplitExpense, error) {
	existing, err := s.splitRepo.FindSplitExpenseByID(ctx, splitID, userID)
	if err != nil {
		return nil, err
	}

	splitType := domain.SplitType(req.SplitType)
	participants, err := splitting.DeriveShares(req.TotalAmount, splitType, toShareInputs(req.Participants))
	if err != nil {
		return nil, err
	}

	split := domain.SplitExpense{
		SplitID:      existing.SplitID,
		UserID:       userID,
		Description:  req.Description,
		TotalAmount:  req.TotalAmount,
		SplitType:    splitType,
		Participants: participants,
		AuditFields:  existing.AuditFields,
	}
	split.LastUpdatedAt = time.Now()
	split.LastUpdatedBy = userID

	if err := s.splitRepo.UpdateSplitExpense(ctx, split); err != nil {
		s.LogError(ctx, err, "Failed to update split expense", "split_id", splitID)
		return nil, fmt.Errorf("failed to update split expense %s: %w", splitID, err)
	}
	return &split, nil
}

func (s *splitExpenseService) DeleteSplitExpense(ctx context.Context, splitID, userID string) error {
	return s.splitRepo.DeleteSplitExpense(ctx, splitID, userID)
}
