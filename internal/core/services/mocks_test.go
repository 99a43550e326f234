package services_test

import (
	"context"
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// Shared repository mocks for the service suites in this package.

type MockFriendRepository struct {
	mock.Mock
}

func (m *MockFriendRepository) SaveFriend(ctx context.Context, friend domain.Friend) error {
	args := m.Called(ctx, friend)
	return args.Error(0)
}

func (m *MockFriendRepository) FindFriendByID(ctx context.Context, friendID, userID string) (*domain.Friend, error) {
	args := m.Called(ctx, friendID, userID)
	var friend *domain.Friend
	if args.Get(0) != nil {
		friend = args.Get(0).(*domain.Friend)
	}
	return friend, args.Error(1)
}

func (m *MockFriendRepository) ListFriends(ctx context.Context, userID string, limit, offset int) ([]domain.Friend, error) {
	args := m.Called(ctx, userID, limit, offset)
	var friends []domain.Friend
	if args.Get(0) != nil {
		friends = args.Get(0).([]domain.Friend)
	}
	return friends, args.Error(1)
}

func (m *MockFriendRepository) UpdateFriend(ctx context.Context, friend domain.Friend) error {
	args := m.Called(ctx, friend)
	return args.Error(0)
}

func (m *MockFriendRepository) DeleteFriend(ctx context.Context, friendID, userID string) error {
	args := m.Called(ctx, friendID, userID)
	return args.Error(0)
}

type MockSplitExpenseRepository struct {
	mock.Mock
}

func (m *MockSplitExpenseRepository) SaveSplitExpense(ctx context.Context, split domain.SplitExpense) error {
	args := m.Called(ctx, split)
	return args.Error(0)
}

func (m *MockSplitExpenseRepository) FindSplitExpenseByID(ctx context.Context, splitID, userID string) (*domain.SplitExpense, error) {
	args := m.Called(ctx, splitID, userID)
	var split *domain.SplitExpense
	if args.Get(0) != nil {
		split = args.Get(0).(*domain.SplitExpense)
	}
	return split, args.Error(1)
}

func (m *MockSplitExpenseRepository) ListSplitExpenses(ctx context.Context, userID string, limit, offset int) ([]domain.SplitExpense, error) {
	args := m.Called(ctx, userID, limit, offset)
	var splits []domain.SplitExpense
	if args.Get(0) != nil {
		splits = args.Get(0).([]domain.SplitExpense)
	}
	return splits, args.Error(1)
}

func (m *MockSplitExpenseRepository) FindSplitExpensesByParticipant(ctx context.Context, userID, participantID string) ([]domain.SplitExpense, error) {
	args := m.Called(ctx, userID, participantID)
	var splits []domain.SplitExpense
	if args.Get(0) != nil {
		splits = args.Get(0).([]domain.SplitExpense)
	}
	return splits, args.Error(1)
}

func (m *MockSplitExpenseRepository) UpdateSplitExpense(ctx context.Context, split domain.SplitExpense) error {
	args := m.Called(ctx, split)
	return args.Error(0)
}

func (m *MockSplitExpenseRepository) DeleteSplitExpense(ctx context.Context, splitID, userID string) error {
	args := m.Called(ctx, splitID, userID)
	return args.Error(0)
}

type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, debtID, userID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID, userID)
	var debt *domain.Debt
	if args.Get(0) != nil {
		debt = args.Get(0).(*domain.Debt)
	}
	return debt, args.Error(1)
}

func (m *MockDebtRepository) ListDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error) {
	args := m.Called(ctx, userID, limit, offset)
	var debts []domain.Debt
	if args.Get(0) != nil {
		debts = args.Get(0).([]domain.Debt)
	}
	return debts, args.Error(1)
}

func (m *MockDebtRepository) FindPendingDebtsByFriend(ctx context.Context, userID, friendID string) ([]domain.Debt, error) {
	args := m.Called(ctx, userID, friendID)
	var debts []domain.Debt
	if args.Get(0) != nil {
		debts = args.Get(0).([]domain.Debt)
	}
	return debts, args.Error(1)
}

func (m *MockDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) (*domain.Debt, error) {
	args := m.Called(ctx, debt)
	var updated *domain.Debt
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Debt)
	}
	return updated, args.Error(1)
}

func (m *MockDebtRepository) DeleteDebt(ctx context.Context, debtID, userID string) error {
	args := m.Called(ctx, debtID, userID)
	return args.Error(0)
}

func (m *MockDebtRepository) SettleDebt(ctx context.Context, debtID, userID string, now time.Time) (*domain.Debt, error) {
	args := m.Called(ctx, debtID, userID, now)
	var debt *domain.Debt
	if args.Get(0) != nil {
		debt = args.Get(0).(*domain.Debt)
	}
	return debt, args.Error(1)
}

type MockNudgeRepository struct {
	mock.Mock
}

func (m *MockNudgeRepository) SaveNudge(ctx context.Context, nudge domain.Nudge) error {
	args := m.Called(ctx, nudge)
	return args.Error(0)
}

func (m *MockNudgeRepository) FindNudgeByID(ctx context.Context, nudgeID, userID string) (*domain.Nudge, error) {
	args := m.Called(ctx, nudgeID, userID)
	var nudge *domain.Nudge
	if args.Get(0) != nil {
		nudge = args.Get(0).(*domain.Nudge)
	}
	return nudge, args.Error(1)
}

func (m *MockNudgeRepository) ListNudges(ctx context.Context, userID string, limit, offset int) ([]domain.Nudge, error) {
	args := m.Called(ctx, userID, limit, offset)
	var nudges []domain.Nudge
	if args.Get(0) != nil {
		nudges = args.Get(0).([]domain.Nudge)
	}
	return nudges, args.Error(1)
}

func (m *MockNudgeRepository) DismissNudge(ctx context.Context, nudgeID, userID string, now time.Time) (*domain.Nudge, error) {
	args := m.Called(ctx, nudgeID, userID, now)
	var nudge *domain.Nudge
	if args.Get(0) != nil {
		nudge = args.Get(0).(*domain.Nudge)
	}
	return nudge, args.Error(1)
}
