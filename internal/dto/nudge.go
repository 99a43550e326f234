package dto

import (
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
)

// CreateNudgeRequest defines data for creating a nudge.
type CreateNudgeRequest struct {
	Type    string `json:"type" binding:"required,max=64"`
	Content string `json:"content" binding:"required"`
}

// NudgeResponse defines data returned for a nudge.
type NudgeResponse struct {
	NudgeID   string    `json:"nudgeID"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToNudgeResponse converts a domain.Nudge to NudgeResponse.
func ToNudgeResponse(n *domain.Nudge) NudgeResponse {
	return NudgeResponse{
		NudgeID:   n.NudgeID,
		Type:      n.Type,
		Content:   n.Content,
		Status:    string(n.Status),
		CreatedAt: n.CreatedAt,
	}
}

// ListNudgesResponse wraps a list of nudges.
type ListNudgesResponse struct {
	Nudges []NudgeResponse `json:"nudges"`
}

// ToListNudgesResponse converts a slice of domain.Nudge to DTO.
func ToListNudgesResponse(ns []domain.Nudge) ListNudgesResponse {
	list := make([]NudgeResponse, len(ns))
	for i, n := range ns {
		list[i] = ToNudgeResponse(&n)
	}
	return ListNudgesResponse{Nudges: list}
}
