// Package follow implements the CollectionFollow repository using PostgreSQL.
package follow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres"
	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// Repo provides follow persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new follow repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const followColumns = `id, collection_id, user_id, created_at`

const insertSQL = `
INSERT INTO collection_follows (collection_id, user_id)
VALUES ($1, $2)
ON CONFLICT (collection_id, user_id) DO NOTHING`

const getByUserSQL = `
SELECT ` + followColumns + `
FROM collection_follows
WHERE collection_id = $1 AND user_id = $2`

// Create adds a follow if it does not already exist and returns the record.
// Following twice is idempotent.
func (r *Repo) Create(ctx context.Context, collectionID uuid.UUID, userID int64) (*domain.CollectionFollow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, insertSQL, collectionID, userID); err != nil {
		return nil, postgres.MapError(err, "follow", fmt.Sprintf("%s/%d", collectionID, userID))
	}

	row := q.QueryRow(ctx, getByUserSQL, collectionID, userID)
	f, err := scanFollow(row)
	if err != nil {
		return nil, postgres.MapError(err, "follow", fmt.Sprintf("%s/%d", collectionID, userID))
	}
	return f, nil
}

const deleteSQL = `
DELETE FROM collection_follows WHERE collection_id = $1 AND user_id = $2`

// Delete removes a follow. Unfollowing something never followed is a no-op.
func (r *Repo) Delete(ctx context.Context, collectionID uuid.UUID, userID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSQL, collectionID, userID); err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

const existsSQL = `
SELECT EXISTS (
    SELECT 1 FROM collection_follows
    WHERE collection_id = $1 AND user_id = $2
)`

// Exists reports whether the user follows the collection.
func (r *Repo) Exists(ctx context.Context, collectionID uuid.UUID, userID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, collectionID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("follow exists: %w", err)
	}
	return exists, nil
}

const countSQL = `
SELECT COUNT(*) FROM collection_follows WHERE collection_id = $1`

// CountByCollection returns the collection's follower count.
func (r *Repo) CountByCollection(ctx context.Context, collectionID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countSQL, collectionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count follows: %w", err)
	}
	return count, nil
}

func scanFollow(row pgx.Row) (*domain.CollectionFollow, error) {
	var f domain.CollectionFollow
	if err := row.Scan(&f.ID, &f.CollectionID, &f.UserID, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}
