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

// nudgeHandler handles HTTP requests for nudges.
type nudgeHandler struct {
	nudgeService portssvc.NudgeSvcFacade
}

func newNudgeHandler(ns portssvc.NudgeSvcFacade) *nudgeHandler {
	return &nudgeHandler{nudgeService: ns}
}

// registerNudgeRoutes registers routes related to nudges.
func registerNudgeRoutes(rg *gin.RouterGroup, nudgeService portssvc.NudgeSvcFacade) {
	h := newNudgeHandler(nudgeService)

	nudges := rg.Group("/nudges")
	{
		nudges.POST("", h.createNudge)
		nudges.GET("", h.listNudges)
		nudges.POST("/:nudgeID/dismiss", h.dismissNudge)
	}
}

func (h *nudgeHandler) createNudge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateNudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	nudge, err := h.nudgeService.CreateNudge(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to create nudge", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create nudge"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToNudgeResponse(nudge))
}

func (h *nudgeHandler) listNudges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, offset := parsePagination(c)
	nudges, err := h.nudgeService.ListNudges(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list nudges", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list nudges"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListNudgesResponse(nudges))
}

func (h *nudgeHandler) dismissNudge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	nudge, err := h.nudgeService.DismissNudge(c.Request.Context(), c.Param("nudgeID"), userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Nudge not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Nudge has already been dismissed"})
		default:
			logger.Error("Failed to dismiss nudge", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to dismiss nudge"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToNudgeResponse(nudge))
}
