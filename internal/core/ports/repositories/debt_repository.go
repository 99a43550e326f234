package repositories

import (
	"context"
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
)

// DebtReader defines read operations for debt data.
type DebtReader interface {
	// FindDebtByID retrieves a debt owned by userID.
	FindDebtByID(ctx context.Context, debtID, userID string) (*domain.Debt, error)

	// ListDebts retrieves a page of debts owned by userID.
	ListDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error)

	// FindPendingDebtsByFriend retrieves all pending debts owned by userID and
	// linked to friendID. Paid debts are excluded at the query level.
	FindPendingDebtsByFriend(ctx context.Context, userID, friendID string) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debt data.
type DebtWriter interface {
	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// UpdateDebt rewrites the mutable fields of a debt owned by debt.UserID.
	// The current row is read under a row lock inside the same transaction,
	// so a debt that reaches paid state can never be modified; such updates
	// report ErrInvalidState. Returns the updated debt.
	UpdateDebt(ctx context.Context, debt domain.Debt) (*domain.Debt, error)

	// DeleteDebt removes a debt owned by userID.
	DeleteDebt(ctx context.Context, debtID, userID string) error

	// SettleDebt transitions a pending debt to paid inside one transaction
	// holding a row lock, so only one of two racing settlements can succeed.
	// Absent or foreign rows report ErrNotFound, already-paid rows
	// ErrInvalidState. Returns the settled debt.
	SettleDebt(ctx context.Context, debtID, userID string, now time.Time) (*domain.Debt, error)
}

// DebtRepository combines all debt repository interfaces.
type DebtRepository interface {
	DebtReader
	DebtWriter
}
