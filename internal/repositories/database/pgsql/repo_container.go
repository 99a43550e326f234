package pgsql

import (
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		FriendRepo:       newPgxFriendRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		SplitExpenseRepo: newPgxSplitExpenseRepository(dbPool),
		DebtRepo:         newPgxDebtRepository(dbPool),
		NudgeRepo:        newPgxNudgeRepository(dbPool),
	}
}
