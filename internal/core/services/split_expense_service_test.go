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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SplitExpenseServiceTestSuite struct {
	suite.Suite
	mockSplitRepo *MockSplitExpenseRepository
	service       portssvc.SplitExpenseSvcFacade
}

func (suite *SplitExpenseServiceTestSuite) SetupTest() {
	suite.mockSplitRepo = new(MockSplitExpenseRepository)
	suite.service = services.NewSplitExpenseService(suite.mockSplitRepo)
}

func (suite *SplitExpenseServiceTestSuite) TestCreateSplitExpense_EqualDerivesShares() {
	ctx := context.Background()
	userID := uuid.NewString()

	req := dto.CreateSplitExpenseRequest{
		Description: "Dinner",
		TotalAmount: decimal.RequireFromString("100"),
		SplitType:   "equal",
		Participants: []dto.SplitParticipantInput{
			{ParticipantID: "alice", AmountPaid: decimal.RequireFromString("100")},
			{ParticipantID: "bob"},
			{ParticipantID: "carol"},
		},
	}

	suite.mockSplitRepo.On("SaveSplitExpense", ctx, mock.MatchedBy(func(s domain.SplitExpense) bool {
		return s.UserID == userID && len(s.Participants) == 3
	})).Return(nil).Once()

	split, err := suite.service.CreateSplitExpense(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(split)
	suite.NotEmpty(split.SplitID)
	suite.Equal(domain.SplitEqual, split.SplitType)
	// 100/3: the odd cent lands on the first participant.
	suite.True(split.Participants[0].ShareAmount.Equal(decimal.RequireFromString("33.34")))
	suite.True(split.Participants[1].ShareAmount.Equal(decimal.RequireFromString("33.33")))
	suite.True(split.Participants[2].ShareAmount.Equal(decimal.RequireFromString("33.33")))
	suite.Equal(userID, split.CreatedBy)

	suite.mockSplitRepo.AssertExpectations(suite.T())
}

func (suite *SplitExpenseServiceTestSuite) TestCreateSplitExpense_CustomMismatchRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	req := dto.CreateSplitExpenseRequest{
		Description: "Groceries",
		TotalAmount: decimal.RequireFromString("100"),
		SplitType:   "custom",
		Participants: []dto.SplitParticipantInput{
			{ParticipantID: "alice", ShareAmount: decimal.RequireFromString("40")},
			{ParticipantID: "bob", ShareAmount: decimal.RequireFromString("40")},
		},
	}

	split, err := suite.service.CreateSplitExpense(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(split)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// Nothing invalid ever reaches the repository.
	suite.mockSplitRepo.AssertNotCalled(suite.T(), "SaveSplitExpense", mock.Anything, mock.Anything)
}

func (suite *SplitExpenseServiceTestSuite) TestCreateSplitExpense_SaveError() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedErr := assert.AnError

	req := dto.CreateSplitExpenseRequest{
		Description: "Cab",
		TotalAmount: decimal.RequireFromString("30"),
		SplitType:   "equal",
		Participants: []dto.SplitParticipantInput{
			{ParticipantID: "alice"},
			{ParticipantID: "bob"},
		},
	}

	suite.mockSplitRepo.On("SaveSplitExpense", ctx, mock.AnythingOfType("domain.SplitExpense")).Return(expectedErr).Once()

	split, err := suite.service.CreateSplitExpense(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(split)
	suite.ErrorIs(err, expectedErr)
	suite.mockSplitRepo.AssertExpectations(suite.T())
}

func (suite *SplitExpenseServiceTestSuite) TestUpdateSplitExpense_RederivesShares() {
	ctx := context.Background()
	userID := uuid.NewString()
	splitID := uuid.NewString()

	existing := &domain.SplitExpense{
		SplitID:     splitID,
		UserID:      userID,
		Description: "Old dinner",
		TotalAmount: decimal.RequireFromString("60"),
		SplitType:   domain.SplitEqual,
		Participants: []domain.SplitParticipant{
			{ParticipantID: "alice", ShareAmount: decimal.RequireFromString("30")},
			{ParticipantID: "bob", ShareAmount: decimal.RequireFromString("30")},
		},
	}

	req := dto.UpdateSplitExpenseRequest{
		Description: "New dinner",
		TotalAmount: decimal.RequireFromString("90"),
		SplitType:   "percentage",
		Participants: []dto.SplitParticipantInput{
			{ParticipantID: "alice", Percentage: decimal.RequireFromString("50")},
			{ParticipantID: "bob", Percentage: decimal.RequireFromString("50")},
		},
	}

	suite.mockSplitRepo.On("FindSplitExpenseByID", ctx, splitID, userID).Return(existing, nil).Once()
	suite.mockSplitRepo.On("UpdateSplitExpense", ctx, mock.MatchedBy(func(s domain.SplitExpense) bool {
		return s.SplitID == splitID &&
			s.SplitType == domain.SplitPercentage &&
			s.Participants[0].ShareAmount.Equal(decimal.RequireFromString("45"))
	})).Return(nil).Once()

	split, err := suite.service.UpdateSplitExpense(ctx, splitID, userID, req)

	suite.Require().NoError(err)
	suite.Equal("New dinner", split.Description)
	suite.Equal(userID, split.LastUpdatedBy)
	suite.mockSplitRepo.AssertExpectations(suite.T())
}

func (suite *SplitExpenseServiceTestSuite) TestUpdateSplitExpense_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	splitID := uuid.NewString()

	suite.mockSplitRepo.On("FindSplitExpenseByID", ctx, splitID, userID).Return(nil, apperrors.ErrNotFound).Once()

	split, err := suite.service.UpdateSplitExpense(ctx, splitID, userID, dto.UpdateSplitExpenseRequest{
		Description: "x",
		TotalAmount: decimal.RequireFromString("10"),
		SplitType:   "equal",
		Participants: []dto.SplitParticipantInput{
			{ParticipantID: "alice"},
		},
	})

	suite.Require().Error(err)
	suite.Nil(split)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSplitRepo.AssertExpectations(suite.T())
}

func (suite *SplitExpenseServiceTestSuite) TestDeleteSplitExpense() {
	ctx := context.Background()
	userID := uuid.NewString()
	splitID := uuid.NewString()

	suite.mockSplitRepo.On("DeleteSplitExpense", ctx, splitID, userID).Return(nil).Once()

	err := suite.service.DeleteSplitExpense(ctx, splitID, userID)

	suite.Require().NoError(err)
	suite.mockSplitRepo.AssertExpectations(suite.T())
}

func TestSplitExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SplitExpenseServiceTestSuite))
}
