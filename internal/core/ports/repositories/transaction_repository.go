package repositories

import (
	"context"

	"github.com/afnan006/LogUp/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves a transaction owned by userID.
	FindTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions owned by userID,
	// newest event first.
	ListTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)

	// UpdateTransaction replaces a transaction's fields.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by userID.
	DeleteTransaction(ctx context.Context, transactionID, userID string) error
}
