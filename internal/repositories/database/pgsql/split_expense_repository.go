package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/afnan006/LogUp/internal/apperrors"
	"github.com/afnan006/LogUp/internal/core/domain"
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	"github.com/afnan006/LogUp/internal/utils/splitting"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxSplitExpenseRepository stores split expenses with their participant
// list as a JSONB document, so a split and its shares are always written
// and read as one unit.
type PgxSplitExpenseRepository struct {
	BaseRepository
}

func newPgxSplitExpenseRepository(db *pgxpool.Pool) portsrepo.SplitExpenseRepository {
	return &PgxSplitExpenseRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SplitExpenseRepository = (*PgxSplitExpenseRepository)(nil)

const splitExpenseColumns = `split_id, user_id, description, total_amount, split_type, participants, created_at, created_by, last_updated_at, last_updated_by`

func scanSplitExpense(row pgx.Row) (*domain.SplitExpense, error) {
	var s domain.SplitExpense
	var participantsJSON []byte
	err := row.Scan(
		&s.SplitID,
		&s.UserID,
		&s.Description,
		&s.TotalAmount,
		&s.SplitType,
		&participantsJSON,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan split expense: %w", err)
	}
	if err := json.Unmarshal(participantsJSON, &s.Participants); err != nil {
		return nil, fmt.Errorf("failed to decode participants for split %s: %w", s.SplitID, err)
	}
	return &s, nil
}

// marshalParticipants re-checks the sum invariant before encoding; a list
// whose shares drift from the total never reaches the table.
func marshalParticipants(totalAmount decimal.Decimal, participants []domain.SplitParticipant) ([]byte, error) {
	if err := splitting.ValidateStored(totalAmount, participants); err != nil {
		return nil, err
	}
	data, err := json.Marshal(participants)
	if err != nil {
		return nil, fmt.Errorf("failed to encode participants: %w", err)
	}
	return data, nil
}

func (r *PgxSplitExpenseRepository) SaveSplitExpense(ctx context.Context, split domain.SplitExpense) error {
	participantsJSON, err := marshalParticipants(split.TotalAmount, split.Participants)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO split_expenses (split_id, user_id, description, total_amount, split_type, participants, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		split.SplitID,
		split.UserID,
		split.Description,
		split.TotalAmount,
		split.SplitType,
		participantsJSON,
		split.CreatedAt,
		split.CreatedBy,
		split.LastUpdatedAt,
		split.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save split expense: %w", err)
	}
	return nil
}

func (r *PgxSplitExpenseRepository) FindSplitExpenseByID(ctx context.Context, splitID, userID string) (*domain.SplitExpense, error) {
	query := `SELECT ` + splitExpenseColumns + ` FROM split_expenses WHERE split_id = $1 AND user_id = $2;`
	return scanSplitExpense(r.Pool.QueryRow(ctx, query, splitID, userID))
}

func (r *PgxSplitExpenseRepository) ListSplitExpenses(ctx context.Context, userID string, limit, offset int) ([]domain.SplitExpense, error) {
	query := `SELECT ` + splitExpenseColumns + ` FROM split_expenses WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list split expenses: %w", err)
	}
	defer rows.Close()
	return collectSplitExpenses(rows)
}

// FindSplitExpensesByParticipant uses JSONB containment to find every split
// whose participant list includes participantID. The GIN index on
// split_expenses.participants serves this query.
func (r *PgxSplitExpenseRepository) FindSplitExpensesByParticipant(ctx context.Context, userID, participantID string) ([]domain.SplitExpense, error) {
	filter, err := json.Marshal([]map[string]string{{"participant_id": participantID}})
	if err != nil {
		return nil, fmt.Errorf("failed to encode participant filter: %w", err)
	}
	query := `SELECT ` + splitExpenseColumns + ` FROM split_expenses WHERE user_id = $1 AND participants @> $2::jsonb ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find split expenses by participant: %w", err)
	}
	defer rows.Close()
	return collectSplitExpenses(rows)
}

func collectSplitExpenses(rows pgx.Rows) ([]domain.SplitExpense, error) {
	var splits []domain.SplitExpense
	for rows.Next() {
		s, err := scanSplitExpense(rows)
		if err != nil {
			return nil, err
		}
		splits = append(splits, *s)
	}
	return splits, rows.Err()
}

func (r *PgxSplitExpenseRepository) UpdateSplitExpense(ctx context.Context, split domain.SplitExpense) error {
	participantsJSON, err := marshalParticipants(split.TotalAmount, split.Participants)
	if err != nil {
		return err
	}
	query := `
		UPDATE split_expenses
		SET description = $3, total_amount = $4, split_type = $5, participants = $6, last_updated_at = $7, last_updated_by = $8
		WHERE split_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		split.SplitID,
		split.UserID,
		split.Description,
		split.TotalAmount,
		split.SplitType,
		participantsJSON,
		split.LastUpdatedAt,
		split.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update split expense %s: %w", split.SplitID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSplitExpenseRepository) DeleteSplitExpense(ctx context.Context, splitID, userID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM split_expenses WHERE split_id = $1 AND user_id = $2;`,
		splitID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete split expense %s: %w", splitID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
