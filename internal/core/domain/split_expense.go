package domain

import "github.com/shopspring/decimal"

// SplitType declares how a split expense's total is allocated to participants.
type SplitType string

const (
	SplitEqual      SplitType = "equal"
	SplitPercentage SplitType = "percentage"
	SplitCustom     SplitType = "custom"
)

// SplitParticipant is one participant's stake in a split expense.
// ShareAmount is what they are responsible for, AmountPaid what they have
// actually put in. The list is ordered; rounding remainders go to the front.
type SplitParticipant struct {
	ParticipantID string          `json:"participant_id"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	ShareAmount   decimal.Decimal `json:"share_amount"`
}

// SplitExpense is a multi-party expense owned by a user. Invariant: the
// participants' share amounts always sum to TotalAmount; shares are derived
// and validated before every persist, never trusted from the caller as-is.
type SplitExpense struct {
	SplitID      string             `json:"splitID"` // Primary Key (UUID)
	UserID       string             `json:"userID"`  // FK -> User.userID (Not Null)
	Description  string             `json:"description"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	SplitType    SplitType          `json:"splitType"`
	Participants []SplitParticipant `json:"participants"`
	AuditFields
}
