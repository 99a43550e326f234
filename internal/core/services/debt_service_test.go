package services_test

import (
	"context"
	"testing"

	"github.com/afnan006/LogUp/internal/apperrors"
	"github.com/afnan006/LogUp/internal/core/domain"
	portssvc "github.com/afnan006/LogUp/internal/core/ports/services"
	"github.com/afnan006/LogUp/internal/core/services"
	"github.com/afnan006/LogUp/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DebtServiceTestSuite struct {
	suite.Suite
	mockDebtRepo   *MockDebtRepository
	mockFriendRepo *MockFriendRepository
	service        portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockFriendRepo = new(MockFriendRepository)
	suite.service = services.NewDebtService(suite.mockDebtRepo, suite.mockFriendRepo)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	friendID := uuid.NewString()

	req := dto.CreateDebtRequest{
		Amount:      decimal.RequireFromString("250"),
		FriendID:    &friendID,
		Description: "Lent for concert tickets",
	}

	suite.mockFriendRepo.On("FindFriendByID", ctx, friendID, userID).
		Return(&domain.Friend{FriendID: friendID, UserID: userID}, nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.UserID == userID && d.Status == domain.DebtPending && d.FriendID != nil && *d.FriendID == friendID
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.NotEmpty(debt.DebtID)
	suite.Equal(domain.DebtPending, debt.Status)
	suite.mockDebtRepo.AssertExpectations(suite.T())
	suite.mockFriendRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_ForeignFriendIsIntegrityViolation() {
	ctx := context.Background()
	userID := uuid.NewString()
	friendID := uuid.NewString()

	req := dto.CreateDebtRequest{
		Amount:   decimal.RequireFromString("10"),
		FriendID: &friendID,
	}

	// The friend row exists but belongs to another user, so the scoped
	// lookup reports not found.
	suite.mockFriendRepo.On("FindFriendByID", ctx, friendID, userID).Return(nil, apperrors.ErrNotFound).Once()

	debt, err := suite.service.CreateDebt(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrIntegrityViolation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_NonPositiveAmount() {
	ctx := context.Background()
	userID := uuid.NewString()

	debt, err := suite.service.CreateDebt(ctx, userID, dto.CreateDebtRequest{
		Amount: decimal.Zero,
	})

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DebtServiceTestSuite) TestUpdateDebt_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()

	updated := &domain.Debt{
		DebtID: debtID,
		UserID: userID,
		Amount: decimal.RequireFromString("75"),
		Status: domain.DebtPending,
	}

	suite.mockDebtRepo.On("UpdateDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.DebtID == debtID && d.UserID == userID && d.Amount.Equal(decimal.RequireFromString("75"))
	})).Return(updated, nil).Once()

	debt, err := suite.service.UpdateDebt(ctx, debtID, userID, dto.UpdateDebtRequest{
		Amount: decimal.RequireFromString("75"),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.DebtPending, debt.Status)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

// The repository checks the status under its row lock, so an update racing a
// settlement loses cleanly. The service must not pre-read the status over an
// unlocked connection; that read would be stale by the time the write runs.
func (suite *DebtServiceTestSuite) TestUpdateDebt_PaidIsRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()

	suite.mockDebtRepo.On("UpdateDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.DebtID == debtID && d.UserID == userID
	})).Return(nil, apperrors.ErrInvalidState).Once()

	debt, err := suite.service.UpdateDebt(ctx, debtID, userID, dto.UpdateDebtRequest{
		Amount: decimal.RequireFromString("75"),
	})

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "FindDebtByID", mock.Anything, mock.Anything, mock.Anything)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_FriendLookupFailureIsNotIntegrityViolation() {
	ctx := context.Background()
	userID := uuid.NewString()
	friendID := uuid.NewString()

	req := dto.CreateDebtRequest{
		Amount:   decimal.RequireFromString("10"),
		FriendID: &friendID,
	}

	suite.mockFriendRepo.On("FindFriendByID", ctx, friendID, userID).
		Return(nil, apperrors.ErrStoreUnavailable).Once()

	debt, err := suite.service.CreateDebt(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.NotErrorIs(err, apperrors.ErrIntegrityViolation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestSettleDebt_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()

	settled := &domain.Debt{
		DebtID: debtID,
		UserID: userID,
		Amount: decimal.RequireFromString("120"),
		Status: domain.DebtPaid,
	}

	suite.mockDebtRepo.On("SettleDebt", ctx, debtID, userID, mock.AnythingOfType("time.Time")).
		Return(settled, nil).Once()

	debt, err := suite.service.SettleDebt(ctx, debtID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.DebtPaid, debt.Status)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestSettleDebt_AlreadyPaid() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()

	suite.mockDebtRepo.On("SettleDebt", ctx, debtID, userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrInvalidState).Once()

	debt, err := suite.service.SettleDebt(ctx, debtID, userID)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestSettleDebt_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()

	suite.mockDebtRepo.On("SettleDebt", ctx, debtID, userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	debt, err := suite.service.SettleDebt(ctx, debtID, userID)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
