package services

import (
	"context"

	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/afnan006/LogUp/internal/dto"
)

// SplitExpenseSvcFacade defines operations on a user's split expenses.
// Every create and update runs share derivation/validation before persisting;
// callers never get a row whose shares do not sum to the total.
type SplitExpenseSvcFacade interface {
	// CreateSplitExpense validates, derives shares and persists a split expense.
	CreateSplitExpense(ctx context.Context, userID string, req dto.CreateSplitExpenseRequest) (*domain.SplitExpense, error)

	// GetSplitExpenseByID retrieves a split expense owned by userID.
	GetSplitExpenseByID(ctx context.Context, splitID, userID string) (*domain.SplitExpense, error)

	// ListSplitExpenses retrieves a page of split expenses owned by userID.
	ListSplitExpenses(ctx context.Context, userID string, limit, offset int) ([]domain.SplitExpense, error)

	// UpdateSplitExpense performs a full-record replace with the same
	// validation as create.
	UpdateSplitExpense(ctx context.Context, splitID, userID string, req dto.UpdateSplitExpenseRequest) (*domain.SplitExpense, error)

	// DeleteSplitExpense removes a split expense owned by userID.
	DeleteSplitExpense(ctx context.Context, splitID, userID string) error
}
