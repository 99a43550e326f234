package services

import (
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	portssvc "github.com/afnan006/LogUp/internal/core/ports/services"
)

// NewContainer wires every service from the repository provider.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo),
		Friend:       NewFriendService(repos.FriendRepo),
		Transaction:  NewTransactionService(repos.TransactionRepo),
		SplitExpense: NewSplitExpenseService(repos.SplitExpenseRepo),
		Debt:         NewDebtService(repos.DebtRepo, repos.FriendRepo),
		Balance:      NewBalanceService(repos.FriendRepo, repos.SplitExpenseRepo, repos.DebtRepo),
		Nudge:        NewNudgeService(repos.NudgeRepo),
	}
}
