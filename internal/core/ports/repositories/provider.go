package repositories

// RepositoryProvider bundles every repository implementation so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	UserRepo         UserRepository
	FriendRepo       FriendRepository
	TransactionRepo  TransactionRepository
	SplitExpenseRepo SplitExpenseRepository
	DebtRepo         DebtRepository
	NudgeRepo        NudgeRepository
}
