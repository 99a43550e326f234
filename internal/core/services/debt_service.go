package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/afnan006/LogUp/internal/apperrors"
	"github.com/afnan006/LogUp/internal/core/domain"
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	portssvc "github.com/afnan006/LogUp/internal/core/ports/services"
	"github.com/afnan006/LogUp/internal/dto"
	"github.com/google/uuid"
)

// debtService manages debts and their settlement lifecycle.
type debtService struct {
	BaseService
	debtRepo   portsrepo.DebtRepository
	friendRepo portsrepo.FriendRepository
}

// NewDebtService creates a new debt service.
func NewDebtService(debtRepo portsrepo.DebtRepository, friendRepo portsrepo.FriendRepository) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: debtRepo, friendRepo: friendRepo}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// checkFriendLink verifies a referenced friend belongs to userID. A debt
// pointing at someone else's friend would corrupt their balance, so an absent
// link is reported as an integrity violation rather than not found. Lookup
// failures other than not-found pass through unchanged.
func (s *debtService) checkFriendLink(ctx context.Context, userID string, friendID *string) error {
	if friendID == nil {
		return nil
	}
	if _, err := s.friendRepo.FindFriendByID(ctx, *friendID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("debt references friend %s not owned by caller: %w", *friendID, apperrors.ErrIntegrityViolation)
		}
		return fmt.Errorf("failed to verify friend %s: %w", *friendID, err)
	}
	return nil
}

func (s *debtService) CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("debt amount must be positive: %w", apperrors.ErrValidation)
	}
	if err := s.checkFriendLink(ctx, userID, req.FriendID); err != nil {
		return nil, err
	}

	now := time.Now()
	debt := domain.Debt{
		DebtID:      uuid.NewString(),
		UserID:      userID,
		FriendID:    req.FriendID,
		Amount:      req.Amount,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      domain.DebtPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt")
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	s.LogInfo(ctx, "Debt created", "debt_id", debt.DebtID)
	return &debt, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, debtID, userID string) (*domain.Debt, error) {
	return s.debtRepo.FindDebtByID(ctx, debtID, userID)
}

func (s *debtService) ListDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}

// UpdateDebt validates the new field values and hands the write to the
// repository, which checks the status under a row lock. Pre-reading the
// status here would leave a window for a settlement to land between the
// check and the write.
func (s *debtService) UpdateDebt(ctx context.Context, debtID, userID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("debt amount must be positive: %w", apperrors.ErrValidation)
	}
	if err := s.checkFriendLink(ctx, userID, req.FriendID); err != nil {
		return nil, err
	}

	debt := domain.Debt{
		DebtID:      debtID,
		UserID:      userID,
		FriendID:    req.FriendID,
		Amount:      req.Amount,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	debt.LastUpdatedAt = time.Now()
	debt.LastUpdatedBy = userID

	updated, err := s.debtRepo.UpdateDebt(ctx, debt)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Debt updated", "debt_id", debtID)
	return updated, nil
}

func (s *debtService) DeleteDebt(ctx context.Context, debtID, userID string) error {
	return s.debtRepo.DeleteDebt(ctx, debtID, userID)
}

// SettleDebt delegates the pending -> paid transition to the repository,
// which performs the status check under a row lock. Checking status here
// first would leave a window for two settlements to interleave.
func (s *debtService) SettleDebt(ctx context.Context, debtID, userID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.SettleDebt(ctx, debtID, userID, time.Now())
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Debt settled", "debt_id", debtID)
	return debt, nil
}
