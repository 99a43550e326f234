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

type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(db *pgxpool.Pool) portsrepo.DebtRepository {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DebtRepository = (*PgxDebtRepository)(nil)

const debtColumns = `debt_id, user_id, friend_id, amount, description, due_date, status, created_at, created_by, last_updated_at, last_updated_by`

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var d domain.Debt
	err := row.Scan(
		&d.DebtID,
		&d.UserID,
		&d.FriendID,
		&d.Amount,
		&d.Description,
		&d.DueDate,
		&d.Status,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.LastUpdatedAt,
		&d.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan debt: %w", err)
	}
	return &d, nil
}

func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	query := `
		INSERT INTO debts (debt_id, user_id, friend_id, amount, description, due_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		debt.DebtID,
		debt.UserID,
		debt.FriendID,
		debt.Amount,
		debt.Description,
		debt.DueDate,
		debt.Status,
		debt.CreatedAt,
		debt.CreatedBy,
		debt.LastUpdatedAt,
		debt.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save debt: %w", err)
	}
	return nil
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID, userID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1 AND user_id = $2;`
	return scanDebt(r.Pool.QueryRow(ctx, query, debtID, userID))
}

func (r *PgxDebtRepository) ListDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()
	return collectDebts(rows)
}

func (r *PgxDebtRepository) FindPendingDebtsByFriend(ctx context.Context, userID, friendID string) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE user_id = $1 AND friend_id = $2 AND status = $3 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID, friendID, domain.DebtPending)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending debts by friend: %w", err)
	}
	defer rows.Close()
	return collectDebts(rows)
}

func collectDebts(rows pgx.Rows) ([]domain.Debt, error) {
	var debts []domain.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, *d)
	}
	return debts, rows.Err()
}

// UpdateDebt reads the row under FOR UPDATE and checks the status while the
// lock is held, the same way SettleDebt does. A settlement committing between
// an unlocked read and the write could otherwise let a paid debt be rewritten.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) (*domain.Debt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	selectQuery := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1 AND user_id = $2 FOR UPDATE;`
	existing, err := scanDebt(tx.QueryRow(ctx, selectQuery, debt.DebtID, debt.UserID))
	if err != nil {
		return nil, err
	}
	if existing.Status.Terminal() {
		return nil, fmt.Errorf("debt %s is already paid: %w", debt.DebtID, apperrors.ErrInvalidState)
	}

	_, err = tx.Exec(ctx, `
		UPDATE debts
		SET friend_id = $3, amount = $4, description = $5, due_date = $6, last_updated_at = $7, last_updated_by = $8
		WHERE debt_id = $1 AND user_id = $2;`,
		debt.DebtID,
		debt.UserID,
		debt.FriendID,
		debt.Amount,
		debt.Description,
		debt.DueDate,
		debt.LastUpdatedAt,
		debt.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update debt %s: %w", debt.DebtID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	existing.FriendID = debt.FriendID
	existing.Amount = debt.Amount
	existing.Description = debt.Description
	existing.DueDate = debt.DueDate
	existing.LastUpdatedAt = debt.LastUpdatedAt
	existing.LastUpdatedBy = debt.LastUpdatedBy
	return existing, nil
}

func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, debtID, userID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM debts WHERE debt_id = $1 AND user_id = $2;`,
		debtID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SettleDebt reads the row under FOR UPDATE, checks the status while the
// lock is held, then flips it to paid. Two racing settlements serialize on
// the lock; the loser sees paid and gets ErrInvalidState.
func (r *PgxDebtRepository) SettleDebt(ctx context.Context, debtID, userID string, now time.Time) (*domain.Debt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1 AND user_id = $2 FOR UPDATE;`
	debt, err := scanDebt(tx.QueryRow(ctx, query, debtID, userID))
	if err != nil {
		return nil, err
	}
	if debt.Status.Terminal() {
		return nil, fmt.Errorf("debt %s is already paid: %w", debtID, apperrors.ErrInvalidState)
	}

	_, err = tx.Exec(ctx,
		`UPDATE debts SET status = $3, last_updated_at = $4, last_updated_by = $2 WHERE debt_id = $1 AND user_id = $2;`,
		debtID, userID, domain.DebtPaid, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to settle debt %s: %w", debtID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	debt.Status = domain.DebtPaid
	debt.LastUpdatedAt = now
	debt.LastUpdatedBy = userID
	return debt, nil
}
