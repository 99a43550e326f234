package dto

import (
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SplitParticipantInput is one participant as submitted by the caller.
// ShareAmount is only honoured for custom splits; Percentage only for
// percentage splits. The server derives everything else.
type SplitParticipantInput struct {
	ParticipantID string          `json:"participant_id" binding:"required"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	ShareAmount   decimal.Decimal `json:"share_amount"`
	Percentage    decimal.Decimal `json:"percentage"`
}

// CreateSplitExpenseRequest defines data for creating a split expense.
type CreateSplitExpenseRequest struct {
	Description  string                  `json:"description" binding:"required"`
	TotalAmount  decimal.Decimal         `json:"total_amount" binding:"required"`
	SplitType    string                  `json:"split_type" binding:"required,oneof=equal percentage custom"`
	Participants []SplitParticipantInput `json:"participants" binding:"required,min=1,dive"`
}

// UpdateSplitExpenseRequest is a full-record replace; it re-runs the same
// derivation and validation as create.
type UpdateSplitExpenseRequest = CreateSplitExpenseRequest

// SplitParticipantResponse is one stored participant.
type SplitParticipantResponse struct {
	ParticipantID string          `json:"participant_id"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	ShareAmount   decimal.Decimal `json:"share_amount"`
}

// SplitExpenseResponse defines data returned for a split expense.
type SplitExpenseResponse struct {
	SplitID      string                     `json:"splitID"`
	Description  string                     `json:"description"`
	TotalAmount  decimal.Decimal            `json:"totalAmount"`
	SplitType    string                     `json:"splitType"`
	Participants []SplitParticipantResponse `json:"participants"`
	CreatedAt    time.Time                  `json:"createdAt"`
	UpdatedAt    time.Time                  `json:"updatedAt"`
}

// ToSplitExpenseResponse converts a domain.SplitExpense to DTO.
func ToSplitExpenseResponse(s *domain.SplitExpense) SplitExpenseResponse {
	participants := make([]SplitParticipantResponse, len(s.Participants))
	for i, p := range s.Participants {
		participants[i] = SplitParticipantResponse{
			ParticipantID: p.ParticipantID,
			AmountPaid:    p.AmountPaid,
			ShareAmount:   p.ShareAmount,
		}
	}
	return SplitExpenseResponse{
		SplitID:      s.SplitID,
		Description:  s.Description,
		TotalAmount:  s.TotalAmount,
		SplitType:    string(s.SplitType),
		Participants: participants,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.LastUpdatedAt,
	}
}

// ListSplitExpensesResponse wraps a list of split expenses.
type ListSplitExpensesResponse struct {
	SplitExpenses []SplitExpenseResponse `json:"splitExpenses"`
}

// ToListSplitExpensesResponse converts a slice of domain.SplitExpense to DTO.
func ToListSplitExpensesResponse(ss []domain.SplitExpense) ListSplitExpensesResponse {
	list := make([]SplitExpenseResponse, len(ss))
	for i, s := range ss {
		list[i] = ToSplitExpenseResponse(&s)
	}
	return ListSplitExpensesResponse{SplitExpenses: list}
}
