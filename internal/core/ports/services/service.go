package services

// ServiceContainer holds instances of all the application services.
// Handlers depend on these interfaces, never on concrete service types.
type ServiceContainer struct {
	User         UserSvcFacade
	Friend       FriendSvcFacade
	Transaction  TransactionSvcFacade
	SplitExpense SplitExpenseSvcFacade
	Debt         DebtSvcFacade
	Balance      BalanceSvcFacade
	Nudge        NudgeSvcFacade
}
