package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/afnan006/LogUp/internal/apperrors"
	portssvc "github.com/afnan006/LogUp/internal/core/ports/services"
	"github.com/afnan006/LogUp/internal/dto"
	"github.com/afnan006/LogUp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// friendHandler handles HTTP requests for friends and the per-friend balance.
type friendHandler struct {
	friendService  portssvc.FriendSvcFacade
	balanceService portssvc.BalanceSvcFacade
}

func newFriendHandler(fs portssvc.FriendSvcFacade, bs portssvc.BalanceSvcFacade) *friendHandler {
	return &friendHandler{friendService: fs, balanceService: bs}
}

// registerFriendRoutes registers routes related to friends.
func registerFriendRoutes(rg *gin.RouterGroup, friendService portssvc.FriendSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := newFriendHandler(friendService, balanceService)

	friends := rg.Group("/friends")
	{
		friends.POST("", h.createFriend)
		friends.GET("", h.listFriends)
		friends.GET("/:friendID", h.getFriend)
		friends.PUT("/:friendID", h.updateFriend)
		friends.DELETE("/:friendID", h.deleteFriend)
		friends.GET("/:friendID/balance", h.getFriendBalance)
	}
}

func (h *friendHandler) createFriend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	friend, err := h.friendService.CreateFriend(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to create friend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create friend"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToFriendResponse(friend))
}

func (h *friendHandler) listFriends(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, offset := parsePagination(c)
	friends, err := h.friendService.ListFriends(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list friends", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list friends"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFriendsResponse(friends))
}

func (h *friendHandler) getFriend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	friend, err := h.friendService.GetFriendByID(c.Request.Context(), c.Param("friendID"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Friend not found"})
			return
		}
		logger.Error("Failed to get friend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve friend"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFriendResponse(friend))
}

func (h *friendHandler) updateFriend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	friend, err := h.friendService.UpdateFriend(c.Request.Context(), c.Param("friendID"), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Friend not found"})
			return
		}
		logger.Error("Failed to update friend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update friend"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFriendResponse(friend))
}

func (h *friendHandler) deleteFriend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.friendService.DeleteFriend(c.Request.Context(), c.Param("friendID"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Friend not found"})
			return
		}
		logger.Error("Failed to delete friend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete friend"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *friendHandler) getFriendBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balance, err := h.balanceService.GetFriendBalance(c.Request.Context(), userID, c.Param("friendID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Friend not found"})
			return
		}
		logger.Error("Failed to compute friend balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFriendBalanceResponse(balance))
}
