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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FriendServiceTestSuite struct {
	suite.Suite
	mockFriendRepo *MockFriendRepository
	service        portssvc.FriendSvcFacade
}

func (suite *FriendServiceTestSuite) SetupTest() {
	suite.mockFriendRepo = new(MockFriendRepository)
	suite.service = services.NewFriendService(suite.mockFriendRepo)
}

func (suite *FriendServiceTestSuite) TestCreateFriend_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	req := dto.CreateFriendRequest{Name: "Ravi"}

	suite.mockFriendRepo.On("SaveFriend", ctx, mock.MatchedBy(func(f domain.Friend) bool {
		return f.UserID == userID && f.Name == "Ravi" && f.FriendID != ""
	})).Return(nil).Once()

	friend, err := suite.service.CreateFriend(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal("Ravi", friend.Name)
	suite.Equal(userID, friend.CreatedBy)
	suite.mockFriendRepo.AssertExpectations(suite.T())
}

func (suite *FriendServiceTestSuite) TestGetFriendByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	friendID := uuid.NewString()

	suite.mockFriendRepo.On("FindFriendByID", ctx, friendID, userID).Return(nil, apperrors.ErrNotFound).Once()

	friend, err := suite.service.GetFriendByID(ctx, friendID, userID)

	suite.Require().Error(err)
	suite.Nil(friend)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FriendServiceTestSuite) TestUpdateFriend_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	friendID := uuid.NewString()

	existing := &domain.Friend{FriendID: friendID, UserID: userID, Name: "Ravi"}
	req := dto.UpdateFriendRequest{Name: "Ravi K", IsOnline: true}

	suite.mockFriendRepo.On("FindFriendByID", ctx, friendID, userID).Return(existing, nil).Once()
	suite.mockFriendRepo.On("UpdateFriend", ctx, mock.MatchedBy(func(f domain.Friend) bool {
		return f.FriendID == friendID && f.Name == "Ravi K" && f.IsOnline
	})).Return(nil).Once()

	friend, err := suite.service.UpdateFriend(ctx, friendID, userID, req)

	suite.Require().NoError(err)
	suite.Equal("Ravi K", friend.Name)
	suite.mockFriendRepo.AssertExpectations(suite.T())
}

func (suite *FriendServiceTestSuite) TestDeleteFriend_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	friendID := uuid.NewString()

	suite.mockFriendRepo.On("DeleteFriend", ctx, friendID, userID).Return(nil).Once()

	err := suite.service.DeleteFriend(ctx, friendID, userID)

	suite.Require().NoError(err)
	suite.mockFriendRepo.AssertExpectations(suite.T())
}

func TestFriendServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FriendServiceTestSuite))
}
