package repositories

import (
	"context"

	"github.com/afnan006/LogUp/internal/core/domain"
)

// SplitExpenseReader defines read operations for split expense data.
type SplitExpenseReader interface {
	// FindSplitExpenseByID retrieves a split expense owned by userID.
	FindSplitExpenseByID(ctx context.Context, splitID, userID string) (*domain.SplitExpense, error)

	// ListSplitExpenses retrieves a page of split expenses owned by userID.
	ListSplitExpenses(ctx context.Context, userID string, limit, offset int) ([]domain.SplitExpense, error)

	// FindSplitExpensesByParticipant retrieves every split expense owned by
	// userID whose participant list contains participantID. Used by the
	// balance aggregator; always reads current rows, never a cache.
	FindSplitExpensesByParticipant(ctx context.Context, userID, participantID string) ([]domain.SplitExpense, error)
}

// SplitExpenseWriter defines write operations for split expense data.
type SplitExpenseWriter interface {
	// SaveSplitExpense persists a new split expense with its participants.
	SaveSplitExpense(ctx context.Context, split domain.SplitExpense) error

	// UpdateSplitExpense performs a full-record replace of a split expense
	// owned by userID.
	UpdateSplitExpense(ctx context.Context, split domain.SplitExpense) error

	// DeleteSplitExpense removes a split expense owned by userID.
	DeleteSplitExpense(ctx context.Context, splitID, userID string) error
}

// SplitExpenseRepository combines all split expense repository interfaces.
type SplitExpenseRepository interface {
	SplitExpenseReader
	SplitExpenseWriter
}
