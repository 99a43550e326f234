package services

import (
	"context"

	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/afnan006/LogUp/internal/dto"
)

// TransactionSvcFacade defines operations on a user's transactions.
type TransactionSvcFacade interface {
	// CreateTransaction records a transaction for userID.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a transaction owned by userID.
	GetTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions owned by userID.
	ListTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)

	// UpdateTransaction replaces a transaction's fields.
	UpdateTransaction(ctx context.Context, transactionID, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction owned by userID.
	DeleteTransaction(ctx context.Context, transactionID, userID string) error
}
