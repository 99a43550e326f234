package services

import (
	"context"
	"fmt"

	"github.com/afnan006/LogUp/internal/core/domain"
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	portssvc "github.com/afnan006/LogUp/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceService derives the net position between a user and one friend.
// Nothing here is persisted; each call folds the current split expense and
// debt rows, so the reported balance can never drift from stored shares.
type balanceService struct {
	BaseService
	friendRepo portsrepo.FriendRepository
	splitRepo  portsrepo.SplitExpenseReader
	debtRepo   portsrepo.DebtReader
}

// NewBalanceService creates a new balance service.
func NewBalanceService(friendRepo portsrepo.FriendRepository, splitRepo portsrepo.SplitExpenseReader, debtRepo portsrepo.DebtReader) portssvc.BalanceSvcFacade {
	return &balanceService{friendRepo: friendRepo, splitRepo: splitRepo, debtRepo: debtRepo}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetFriendBalance computes the signed net amount against friendID.
// Positive means the friend owes the user. Split expenses contribute
// (share - paid) per appearance of the friend; pending debts contribute
// their full amount. Paid debts and deleted friends' orphaned debts are
// excluded at the query level.
func (s *balanceService) GetFriendBalance(ctx context.Context, userID, friendID string) (*domain.FriendBalance, error) {
	if _, err := s.friendRepo.FindFriendByID(ctx, friendID, userID); err != nil {
		return nil, err
	}

	splits, err := s.splitRepo.FindSplitExpensesByParticipant(ctx, userID, friendID)
	if err != nil {
		return nil, fmt.Errorf("failed to load split expenses for balance: %w", err)
	}
	fromSplits := decimal.Zero
	for _, split := range splits {
		for _, p := range split.Participants {
			if p.ParticipantID == friendID {
				fromSplits = fromSplits.Add(p.ShareAmount.Sub(p.AmountPaid))
			}
		}
	}

	debts, err := s.debtRepo.FindPendingDebtsByFriend(ctx, userID, friendID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending debts for balance: %w", err)
	}
	fromDebts := decimal.Zero
	for _, d := range debts {
		fromDebts = fromDebts.Add(d.Amount)
	}

	return &domain.FriendBalance{
		FriendID:   friendID,
		FromSplits: fromSplits,
		FromDebts:  fromDebts,
		Net:        fromSplits.Add(fromDebts),
	}, nil
}
