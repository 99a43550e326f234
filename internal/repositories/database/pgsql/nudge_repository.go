package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/afnan006/LogUp/internal/apperrors"
	"github.com/afnan006/LogUp/internal/core/domain"
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNudgeRepository struct {
	BaseRepository
}

func newPgxNudgeRepository(db *pgxpool.Pool) portsrepo.NudgeRepository {
	return &PgxNudgeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.NudgeRepository = (*PgxNudgeRepository)(nil)

const nudgeColumns = `nudge_id, user_id, type, content, status, created_at, created_by, last_updated_at, last_updated_by`

func scanNudge(row pgx.Row) (*domain.Nudge, error) {
	var n domain.Nudge
	err := row.Scan(
		&n.NudgeID,
		&n.UserID,
		&n.Type,
		&n.Content,
		&n.Status,
		&n.CreatedAt,
		&n.CreatedBy,
		&n.LastUpdatedAt,
		&n.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan nudge: %w", err)
	}
	return &n, nil
}

func (r *PgxNudgeRepository) SaveNudge(ctx context.Context, nudge domain.Nudge) error {
	query := `
		INSERT INTO nudges (nudge_id, user_id, type, content, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		nudge.NudgeID,
		nudge.UserID,
		nudge.Type,
		nudge.Content,
		nudge.Status,
		nudge.CreatedAt,
		nudge.CreatedBy,
		nudge.LastUpdatedAt,
		nudge.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save nudge: %w", err)
	}
	return nil
}

func (r *PgxNudgeRepository) FindNudgeByID(ctx context.Context, nudgeID, userID string) (*domain.Nudge, error) {
	query := `SELECT ` + nudgeColumns + ` FROM nudges WHERE nudge_id = $1 AND user_id = $2;`
	return scanNudge(r.Pool.QueryRow(ctx, query, nudgeID, userID))
}

func (r *PgxNudgeRepository) ListNudges(ctx context.Context, userID string, limit, offset int) ([]domain.Nudge, error) {
	query := `SELECT ` + nudgeColumns + ` FROM nudges WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list nudges: %w", err)
	}
	defer rows.Close()

	var nudges []domain.Nudge
	for rows.Next() {
		n, err := scanNudge(rows)
		if err != nil {
			return nil, err
		}
		nudges = append(nudges, *n)
	}
	return nudges, rows.Err()
}

// DismissNudge mirrors debt settlement: row lock, status check, flip.
func (r *PgxNudgeRepository) DismissNudge(ctx context.Context, nudgeID, userID string, now time.Time) (*domain.Nudge, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + nudgeColumns + ` FROM nudges WHERE nudge_id = $1 AND user_id = $2 FOR UPDATE;`
	nudge, err := scanNudge(tx.QueryRow(ctx, query, nudgeID, userID))
	if err != nil {
		return nil, err
	}
	if nudge.Status.Terminal() {
		return nil, fmt.Errorf("nudge %s is already dismissed: %w", nudgeID, apperrors.ErrInvalidState)
	}

	_, err = tx.Exec(ctx,
		`UPDATE nudges SET status = $3, last_updated_at = $4, last_updated_by = $2 WHERE nudge_id = $1 AND user_id = $2;`,
		nudgeID, userID, domain.NudgeDismissed, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dismiss nudge %s: %w", nudgeID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	nudge.Status = domain.NudgeDismissed
	nudge.LastUpdatedAt = now
	nudge.LastUpdatedBy = userID
	return nudge, nil
}
