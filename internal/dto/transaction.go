package dto

import (
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines data for recording a transaction.
type CreateTransactionRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	MerchantName string          `json:"merchantName"`
	BankName     string          `json:"bankName"`
	Confidence   string          `json:"confidence" binding:"omitempty,oneof=high medium low"`
	Type         string          `json:"type" binding:"required,oneof=expense income"`
	Timestamp    time.Time       `json:"timestamp" binding:"required"`
}

// UpdateTransactionRequest is a full replace of a transaction's fields.
type UpdateTransactionRequest = CreateTransactionRequest

// TransactionResponse defines data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	MerchantName  string          `json:"merchantName,omitempty"`
	BankName      string          `json:"bankName,omitempty"`
	Confidence    string          `json:"confidence,omitempty"`
	Type          string          `json:"type"`
	Timestamp     time.Time       `json:"timestamp"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Amount:        t.Amount,
		Description:   t.Description,
		Category:      t.Category,
		MerchantName:  t.MerchantName,
		BankName:      t.BankName,
		Confidence:    t.Confidence,
		Type:          string(t.Type),
		Timestamp:     t.Timestamp,
		CreatedAt:     t.CreatedAt,
	}
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain.Transaction to DTO.
func ToListTransactionsResponse(ts []domain.Transaction) ListTransactionsResponse {
	list := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		list[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: list}
}
