package services

import (
	"context"
	"fmt"
	"time"

	"github.com/afnan006/LogUp/internal/apperrors"
	"github.com/afnan006/LogUp/internal/core/domain"
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	portssvc "github.com/afnan006/LogUp/internal/core/ports/services"
	"github.com/afnan006/LogUp/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionService manages plain transactions. They carry no cross-entity
// invariant and stay out of friend balances.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func buildTransaction(userID string, req dto.CreateTransactionRequest) (domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return domain.Transaction{
		UserID:       userID,
		Amount:       req.Amount,
		Description:  req.Description,
		Category:     req.Category,
		MerchantName: req.MerchantName,
		BankName:     req.BankName,
		Confidence:   req.Confidence,
		Type:         domain.TransactionType(req.Type),
		Timestamp:    req.Timestamp,
	}, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn, err := buildTransaction(userID, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn.TransactionID = uuid.NewString()
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID, userID)
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	txn, err := buildTransaction(userID, req)
	if err != nil {
		return nil, err
	}
	txn.TransactionID = existing.TransactionID
	txn.AuditFields = existing.AuditFields
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", "transaction_id", transactionID)
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID, userID string) error {
	return s.txnRepo.DeleteTransaction(ctx, transactionID, userID)
}
