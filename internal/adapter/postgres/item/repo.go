// Package item implements the CollectionItem repository using PostgreSQL.
//
// Position bookkeeping (shift ranges, renumbering) lives in the item service;
// this package only exposes the primitives it needs. Duplicate targets are
// rejected by partial unique indexes and surface as domain.ErrAlreadyExists.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres"
	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// Repo provides collection item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, collection_id, topic_id, post_id, position, note, collected_at, collected_by_id, created_at, updated_at`

const createSQL = `
INSERT INTO collection_items (collection_id, topic_id, post_id, position, note, collected_by_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + itemColumns

// Create inserts an item at the given position. A duplicate target within the
// collection returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, item *domain.CollectionItem) (*domain.CollectionItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		item.CollectionID, item.TopicID, item.PostID, item.Position, item.Note, item.CollectedByID)
	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection item", "new")
	}
	return created, nil
}

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM collection_items
WHERE collection_id = $1 AND id = $2`

// GetByID returns an item scoped to its collection.
func (r *Repo) GetByID(ctx context.Context, collectionID, itemID uuid.UUID) (*domain.CollectionItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, collectionID, itemID)
	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection item", itemID.String())
	}
	return item, nil
}

const listByCollectionSQL = `
SELECT ` + itemColumns + `
FROM collection_items
WHERE collection_id = $1
ORDER BY position, id`

// ListByCollection returns all items in display order. Ties on position are
// broken by id so the order is deterministic even mid-renumber.
func (r *Repo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.CollectionItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCollectionSQL, collectionID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []domain.CollectionItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list items: scan: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: rows: %w", err)
	}

	return items, nil
}

const countSQL = `
SELECT COUNT(*) FROM collection_items WHERE collection_id = $1`

// Count returns how many items the collection holds.
func (r *Repo) Count(ctx context.Context, collectionID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countSQL, collectionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

const maxPositionSQL = `
SELECT COALESCE(MAX(position), -1) FROM collection_items WHERE collection_id = $1`

// MaxPosition returns the highest occupied position, or -1 for an empty
// collection, so appending is always max+1.
func (r *Repo) MaxPosition(ctx context.Context, collectionID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var max int
	if err := q.QueryRow(ctx, maxPositionSQL, collectionID).Scan(&max); err != nil {
		return 0, fmt.Errorf("max item position: %w", err)
	}
	return max, nil
}

const findTopicSQL = `
SELECT ` + itemColumns + `
FROM collection_items
WHERE collection_id = $1 AND topic_id = $2 AND post_id IS NULL`

const findPostSQL = `
SELECT ` + itemColumns + `
FROM collection_items
WHERE collection_id = $1 AND post_id = $2`

// FindByTarget looks up the item holding the given target, if any.
func (r *Repo) FindByTarget(ctx context.Context, collectionID uuid.UUID, target domain.ItemTarget) (*domain.CollectionItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row pgx.Row
	if postID, ok := target.PostID(); ok {
		row = q.QueryRow(ctx, findPostSQL, collectionID, postID)
	} else {
		row = q.QueryRow(ctx, findTopicSQL, collectionID, target.TopicID())
	}

	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection item", "by target")
	}
	return item, nil
}

const existsTopicSQL = `
SELECT EXISTS (
    SELECT 1 FROM collection_items
    WHERE collection_id = $1 AND topic_id = $2 AND post_id IS NULL
)`

const existsPostSQL = `
SELECT EXISTS (
    SELECT 1 FROM collection_items
    WHERE collection_id = $1 AND post_id = $2
)`

// ExistsTarget reports whether the collection already holds the target.
func (r *Repo) ExistsTarget(ctx context.Context, collectionID uuid.UUID, target domain.ItemTarget) (bool, error) {
	if postID, ok := target.PostID(); ok {
		return r.ExistsPost(ctx, collectionID, postID)
	}
	return r.ExistsTopic(ctx, collectionID, target.TopicID())
}

// ExistsTopic reports whether the collection holds the whole topic.
func (r *Repo) ExistsTopic(ctx context.Context, collectionID uuid.UUID, topicID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsTopicSQL, collectionID, topicID).Scan(&exists); err != nil {
		return false, fmt.Errorf("item target exists: %w", err)
	}
	return exists, nil
}

// ExistsPost reports whether the collection holds the post.
func (r *Repo) ExistsPost(ctx context.Context, collectionID uuid.UUID, postID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsPostSQL, collectionID, postID).Scan(&exists); err != nil {
		return false, fmt.Errorf("item target exists: %w", err)
	}
	return exists, nil
}

const deleteSQL = `
DELETE FROM collection_items WHERE collection_id = $1 AND id = $2`

// Delete removes an item. Returns domain.ErrNotFound if it is not in the
// collection.
func (r *Repo) Delete(ctx context.Context, collectionID, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, collectionID, itemID)
	if err != nil {
		return postgres.MapError(err, "collection item", itemID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

const updatePositionSQL = `
UPDATE collection_items
SET position = $2, updated_at = now()
WHERE id = $1`

// UpdatePosition moves a single item to the given position.
func (r *Repo) UpdatePosition(ctx context.Context, itemID uuid.UUID, position int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updatePositionSQL, itemID, position)
	if err != nil {
		return postgres.MapError(err, "collection item", itemID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

const shiftRangeSQL = `
UPDATE collection_items
SET position = position + $4, updated_at = now()
WHERE collection_id = $1 AND position >= $2 AND position <= $3`

// ShiftRange adds delta to every position in the inclusive range [lo, hi].
// Used by the move operation to open or close a gap before placing the item;
// must run inside the same transaction as the placement.
func (r *Repo) ShiftRange(ctx context.Context, collectionID uuid.UUID, lo, hi, delta int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, shiftRangeSQL, collectionID, lo, hi, delta); err != nil {
		return fmt.Errorf("shift item positions: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.CollectionItem, error) {
	var item domain.CollectionItem
	err := row.Scan(
		&item.ID, &item.CollectionID, &item.TopicID, &item.PostID, &item.Position,
		&item.Note, &item.CollectedAt, &item.CollectedByID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
