package services

import (
	"context"

	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/afnan006/LogUp/internal/dto"
)

// DebtSvcFacade defines operations on a user's debts, including the
// settlement state machine (pending -> paid, paid terminal).
type DebtSvcFacade interface {
	// CreateDebt records a debt; a referenced friend must belong to userID.
	CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error)

	// GetDebtByID retrieves a debt owned by userID.
	GetDebtByID(ctx context.Context, debtID, userID string) (*domain.Debt, error)

	// ListDebts retrieves a page of debts owned by userID.
	ListDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error)

	// UpdateDebt replaces a pending debt's fields; paid debts reject edits.
	UpdateDebt(ctx context.Context, debtID, userID string, req dto.UpdateDebtRequest) (*domain.Debt, error)

	// DeleteDebt removes a debt owned by userID.
	DeleteDebt(ctx context.Context, debtID, userID string) error

	// SettleDebt marks a pending debt paid. Settling an already-paid debt
	// reports ErrInvalidState so callers can detect double settlement.
	SettleDebt(ctx context.Context, debtID, userID string) (*domain.Debt, error)
}

// BalanceSvcFacade is the balance aggregator: it folds split expenses and
// pending debts between a user and one friend into a signed net amount.
type BalanceSvcFacade interface {
	// GetFriendBalance recomputes the net balance against friendID from
	// current rows. Positive means the friend owes the user.
	GetFriendBalance(ctx context.Context, userID, friendID string) (*domain.FriendBalance, error)
}

// NudgeSvcFacade defines operations on a user's nudges.
type NudgeSvcFacade interface {
	// CreateNudge records a nudge for userID.
	CreateNudge(ctx context.Context, userID string, req dto.CreateNudgeRequest) (*domain.Nudge, error)

	// ListNudges retrieves a page of nudges owned by userID.
	ListNudges(ctx context.Context, userID string, limit, offset int) ([]domain.Nudge, error)

	// DismissNudge marks an active nudge dismissed; dismissed is terminal.
	DismissNudge(ctx context.Context, nudgeID, userID string) (*domain.Nudge, error)
}
