package domain

// NudgeStatus indicates whether a nudge is still shown to the user.
// dismissed is terminal, mirroring the debt lifecycle.
type NudgeStatus string

const (
	NudgeActive    NudgeStatus = "active"
	NudgeDismissed NudgeStatus = "dismissed"
)

// Terminal reports whether no further status transition is allowed.
func (s NudgeStatus) Terminal() bool {
	return s == NudgeDismissed
}

// Nudge is a lightweight reminder surfaced to a user, e.g. a debt coming due.
type Nudge struct {
	NudgeID string      `json:"nudgeID"` // Primary Key (UUID)
	UserID  string      `json:"userID"`  // FK -> User.userID (Not Null)
	Type    string      `json:"type"`    // e.g. debt_due, savings_goal
	Content string      `json:"content"`
	Status  NudgeStatus `json:"status"`
	AuditFields
}
