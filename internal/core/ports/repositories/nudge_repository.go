package repositories

import (
	"context"
	"time"

	"github.com/afnan006/LogUp/internal/core/domain"
)

// NudgeRepository defines persistence operations for nudges.
type NudgeRepository interface {
	// SaveNudge persists a new nudge.
	SaveNudge(ctx context.Context, nudge domain.Nudge) error

	// FindNudgeByID retrieves a nudge owned by userID.
	FindNudgeByID(ctx context.Context, nudgeID, userID string) (*domain.Nudge, error)

	// ListNudges retrieves a page of nudges owned by userID.
	ListNudges(ctx context.Context, userID string, limit, offset int) ([]domain.Nudge, error)

	// DismissNudge transitions an active nudge to dismissed, with the same
	// lock discipline as debt settlement.
	DismissNudge(ctx context.Context, nudgeID, userID string, now time.Time) (*domain.Nudge, error)
}
