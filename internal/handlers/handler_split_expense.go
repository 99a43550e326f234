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

// splitExpenseHandler handles HTTP requests for split expenses.
type splitExpenseHandler struct {
	splitService portssvc.SplitExpenseSvcFacade
}

func newSplitExpenseHandler(ss portssvc.SplitExpenseSvcFacade) *splitExpenseHandler {
	return &splitExpenseHandler{splitService: ss}
}

// registerSplitExpenseRoutes registers routes related to split expenses.
func registerSplitExpenseRoutes(rg *gin.RouterGroup, splitService portssvc.SplitExpenseSvcFacade) {
	h := newSplitExpenseHandler(splitService)

	splits := rg.Group("/split-expenses")
	{
		splits.POST("", h.createSplitExpense)
		splits.GET("", h.listSplitExpenses)
		splits.GET("/:splitID", h.getSplitExpense)
		splits.PUT("/:splitID", h.updateSplitExpense)
		splits.DELETE("/:splitID", h.deleteSplitExpense)
	}
}

func (h *splitExpenseHandler) createSplitExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateSplitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	split, err := h.splitService.CreateSplitExpense(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid split expense", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create split expense", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create split expense"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSplitExpenseResponse(split))
}

func (h *splitExpenseHandler) listSplitExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, offset := parsePagination(c)
	splits, err := h.splitService.ListSplitExpenses(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list split expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list split expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSplitExpensesResponse(splits))
}

func (h *splitExpenseHandler) getSplitExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	split, err := h.splitService.GetSplitExpenseByID(c.Request.Context(), c.Param("splitID"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Split expense not found"})
			return
		}
		logger.Error("Failed to get split expense", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve split expense"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSplitExpenseResponse(split))
}

func (h *splitExpenseHandler) updateSplitExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateSplitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	split, err := h.splitService.UpdateSplitExpense(c.Request.Context(), c.Param("splitID"), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Split expense not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid split expense update", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update split expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update split expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSplitExpenseResponse(split))
}

func (h *splitExpenseHandler) deleteSplitExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.splitService.DeleteSplitExpense(c.Request.Context(), c.Param("splitID"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Split expense not found"})
			return
		}
		logger.Error("Failed to delete split expense", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete split expense"})
		return
	}

	c.Status(http.StatusNoContent)
}
