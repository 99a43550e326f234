package dto

import (
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines data for recording a debt. FriendID is optional;
// when set it must reference a friend belonging to the same user.
type CreateDebtRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	FriendID    *string         `json:"friendID,omitempty"`
	Description string          `json:"description"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
}

// UpdateDebtRequest is a full replace of a debt's mutable fields. Rejected
// once the debt has been paid.
type UpdateDebtRequest = CreateDebtRequest

// DebtResponse defines data returned for a debt.
type DebtResponse struct {
	DebtID      string          `json:"debtID"`
	FriendID    *string         `json:"friendID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToDebtResponse converts a domain.Debt to DebtResponse.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:      d.DebtID,
		FriendID:    d.FriendID,
		Amount:      d.Amount,
		Description: d.Description,
		DueDate:     d.DueDate,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.LastUpdatedAt,
	}
}

// ListDebtsResponse wraps a list of debts.
type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// ToListDebtsResponse converts a slice of domain.Debt to DTO.
func ToListDebtsResponse(ds []domain.Debt) ListDebtsResponse {
	list := make([]DebtResponse, len(ds))
	for i, d := range ds {
		list[i] = ToDebtResponse(&d)
	}
	return ListDebtsResponse{Debts: list}
}

// FriendBalanceResponse is the derived net position against one friend.
// Positive means the friend owes the user.
type FriendBalanceResponse struct {
	FriendID   string          `json:"friendID"`
	FromSplits decimal.Decimal `json:"fromSplits"`
	FromDebts  decimal.Decimal `json:"fromDebts"`
	Net        decimal.Decimal `json:"net"`
	Settled    bool            `json:"settled"`
}

// ToFriendBalanceResponse converts a domain.FriendBalance to DTO.
func ToFriendBalanceResponse(b *domain.FriendBalance) FriendBalanceResponse {
	return FriendBalanceResponse{
		FriendID:   b.FriendID,
		FromSplits: b.FromSplits,
		FromDebts:  b.FromDebts,
		Net:        b.Net,
		Settled:    b.Net.IsZero(),
	}
}
