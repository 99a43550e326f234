package domain

import "github.com/shopspring/decimal"

// FriendBalance is the derived net position between a user and one friend.
// It is never persisted; every read recomputes it from the current split
// expense and debt rows so stored shares and reported balances cannot drift.
// Sign convention: positive means the friend owes the user.
type FriendBalance struct {
	FriendID   string          `json:"friendID"`
	FromSplits decimal.Decimal `json:"fromSplits"` // sum of (share - paid) over split expenses
	FromDebts  decimal.Decimal `json:"fromDebts"`  // sum of pending debt amounts
	Net        decimal.Decimal `json:"net"`
}
