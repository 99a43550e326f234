package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/afnan006/LogUp/internal/apperrors"
	"github.com/afnan006/LogUp/internal/core/domain"
	portsrepo "github.com/afnan006/LogUp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFriendRepository struct {
	BaseRepository
}

func newPgxFriendRepository(db *pgxpool.Pool) portsrepo.FriendRepository {
	return &PgxFriendRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.FriendRepository = (*PgxFriendRepository)(nil)

const friendColumns = `friend_id, user_id, name, phone_number, avatar_url, is_online, created_at, created_by, last_updated_at, last_updated_by`

func scanFriend(row pgx.Row) (*domain.Friend, error) {
	var f domain.Friend
	err := row.Scan(
		&f.FriendID,
		&f.UserID,
		&f.Name,
		&f.PhoneNumber,
		&f.AvatarURL,
		&f.IsOnline,
		&f.CreatedAt,
		&f.CreatedBy,
		&f.LastUpdatedAt,
		&f.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan friend: %w", err)
	}
	return &f, nil
}

func (r *PgxFriendRepository) SaveFriend(ctx context.Context, friend domain.Friend) error {
	query := `
		INSERT INTO friends (friend_id, user_id, name, phone_number, avatar_url, is_online, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		friend.FriendID,
		friend.UserID,
		friend.Name,
		friend.PhoneNumber,
		friend.AvatarURL,
		friend.IsOnline,
		friend.CreatedAt,
		friend.CreatedBy,
		friend.LastUpdatedAt,
		friend.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save friend: %w", err)
	}
	return nil
}

func (r *PgxFriendRepository) FindFriendByID(ctx context.Context, friendID, userID string) (*domain.Friend, error) {
	query := `SELECT ` + friendColumns + ` FROM friends WHERE friend_id = $1 AND user_id = $2;`
	return scanFriend(r.Pool.QueryRow(ctx, query, friendID, userID))
}

func (r *PgxFriendRepository) ListFriends(ctx context.Context, userID string, limit, offset int) ([]domain.Friend, error) {
	query := `SELECT ` + friendColumns + ` FROM friends WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []domain.Friend
	for rows.Next() {
		f, err := scanFriend(rows)
		if err != nil {
			return nil, err
		}
		friends = append(friends, *f)
	}
	return friends, rows.Err()
}

func (r *PgxFriendRepository) UpdateFriend(ctx context.Context, friend domain.Friend) error {
	query := `
		UPDATE friends
		SET name = $3, phone_number = $4, avatar_url = $5, is_online = $6, last_updated_at = $7, last_updated_by = $8
		WHERE friend_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		friend.FriendID,
		friend.UserID,
		friend.Name,
		friend.PhoneNumber,
		friend.AvatarURL,
		friend.IsOnline,
		friend.LastUpdatedAt,
		friend.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update friend %s: %w", friend.FriendID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteFriend removes the friend row and nulls the friend link on every
// debt that referenced it, in one transaction. The debts survive as orphans
// and stop contributing to any balance.
func (r *PgxFriendRepository) DeleteFriend(ctx context.Context, friendID, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx,
		`UPDATE debts SET friend_id = NULL WHERE friend_id = $1 AND user_id = $2;`,
		friendID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to orphan debts for friend %s: %w", friendID, err)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM friends WHERE friend_id = $1 AND user_id = $2;`,
		friendID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete friend %s: %w", friendID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
