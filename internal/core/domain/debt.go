package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus indicates where a debt is in its lifecycle.
// pending -> paid is the only transition; paid is terminal. Reversal means
// creating a new offsetting debt, never flipping a paid one back.
type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPaid    DebtStatus = "paid"
)

// Terminal reports whether no further status transition is allowed.
func (s DebtStatus) Terminal() bool {
	return s == DebtPaid
}

// Debt is a pairwise obligation owned by a user, optionally linked to one of
// their friends. A nil FriendID means the counterparty row has been deleted
// (or was never recorded); the debt itself survives friend deletion.
type Debt struct {
	DebtID      string          `json:"debtID"` // Primary Key (UUID)
	UserID      string          `json:"userID"` // FK -> User.userID (Not Null)
	FriendID    *string         `json:"friendID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Status      DebtStatus      `json:"status"`
	AuditFields
}
