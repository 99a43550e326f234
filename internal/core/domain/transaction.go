package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is an expense or income.
type TransactionType string

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

// Transaction represents a single financial event owned by a user. It carries
// no cross-entity invariant and does not participate in friend balances.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> User.userID (Not Null)
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	MerchantName  string          `json:"merchantName,omitempty"`
	BankName      string          `json:"bankName,omitempty"`
	Confidence    string          `json:"confidence,omitempty"` // classification confidence: high/medium/low
	Type          TransactionType `json:"type"`
	Timestamp     time.Time       `json:"timestamp"` // when the event occurred
	AuditFields
}
