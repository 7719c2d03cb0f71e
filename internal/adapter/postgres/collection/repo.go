// Package collection implements the Collection repository using PostgreSQL.
// Listing queries are built dynamically with squirrel; writes use raw SQL.
package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres"
	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const collectionColumns = `id, creator_id, owner_id, title, description, recommended, deleted_at, created_at, updated_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO collections (creator_id, owner_id, title, description)
VALUES ($1, $2, $3, $4)
RETURNING ` + collectionColumns

// Create inserts a new collection and returns the persisted record.
func (r *Repo) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL, c.CreatorID, c.OwnerID, c.Title, c.Description)
	created, err := scanCollection(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection", "new")
	}
	return created, nil
}

const updateSQL = `
UPDATE collections
SET title = $2, description = $3, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + collectionColumns

// Update rewrites title and description. Returns domain.ErrNotFound if the
// collection does not exist or is soft-deleted.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, title string, description *string) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL, id, title, description)
	updated, err := scanCollection(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection", id.String())
	}
	return updated, nil
}

const setRecommendedSQL = `
UPDATE collections
SET recommended = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + collectionColumns

// SetRecommended toggles the staff-controlled recommended flag.
func (r *Repo) SetRecommended(ctx context.Context, id uuid.UUID, recommended bool) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, setRecommendedSQL, id, recommended)
	updated, err := scanCollection(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection", id.String())
	}
	return updated, nil
}

const softDeleteSQL = `
UPDATE collections
SET deleted_at = now(), recommended = FALSE, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

// SoftDelete tombstones a collection and clears its recommendation.
// Deleting an already-deleted collection is a no-op.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, softDeleteSQL, id); err != nil {
		return postgres.MapError(err, "collection", id.String())
	}
	return nil
}

const purgeDeletedBeforeSQL = `
DELETE FROM collections
WHERE deleted_at IS NOT NULL AND deleted_at < $1`

// PurgeDeletedBefore physically removes collections tombstoned before the
// threshold. Items, memberships, role events and follows go with them via FK
// cascade. Returns the number of collections removed.
func (r *Repo) PurgeDeletedBefore(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, purgeDeletedBeforeSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge deleted collections: %w", err)
	}
	return tag.RowsAffected(), nil
}

const setOwnerSQL = `
UPDATE collections
SET owner_id = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

// SetOwner reassigns the collection's owner. Callers must run this inside the
// same transaction as the membership upgrade and the role event append.
func (r *Repo) SetOwner(ctx context.Context, id uuid.UUID, ownerID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setOwnerSQL, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "collection", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT ` + collectionColumns + `
FROM collections
WHERE id = $1`

// GetByID returns a collection by primary key, including soft-deleted rows.
// Callers decide whether a tombstone is visible to them.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, id)
	c, err := scanCollection(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection", id.String())
	}
	return c, nil
}

const countByCreatorSQL = `
SELECT COUNT(*) FROM collections WHERE creator_id = $1`

// CountByCreator returns how many collections a user has created, tombstones
// included; the per-user quota counts them too.
func (r *Repo) CountByCreator(ctx context.Context, userID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByCreatorSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count collections by creator: %w", err)
	}
	return count, nil
}

// ListPlaza returns the public listing under the given filter, search and
// limit. Follower counts ride along for the most_followed ordering.
func (r *Repo) ListPlaza(ctx context.Context, query domain.ListQuery) ([]domain.CollectionSummary, error) {
	builder := r.listBuilder().Limit(uint64(query.Limit))

	switch query.Filter {
	case domain.PlazaRecommended:
		builder = builder.Where(squirrel.Eq{"c.recommended": true}).
			OrderBy("c.created_at DESC")
	case domain.PlazaMostFollowed:
		builder = builder.OrderBy("COUNT(f.id) DESC", "c.created_at DESC")
	default:
		builder = builder.OrderBy("c.created_at DESC")
	}

	builder = applySearch(builder, query.Search)

	return r.queryListing(ctx, builder, "list plaza")
}

// ListManageableBy returns collections where the user is creator, owner, or
// an active maintainer, latest first.
func (r *Repo) ListManageableBy(ctx context.Context, userID int64, search string, limit int) ([]domain.CollectionSummary, error) {
	builder := r.listBuilder().
		LeftJoin("collection_memberships m ON m.collection_id = c.id AND m.user_id = ? AND m.status = ?",
			userID, domain.MembershipActive).
		Where(squirrel.Or{
			squirrel.Eq{"c.creator_id": userID},
			squirrel.Eq{"c.owner_id": userID},
			squirrel.Expr("m.id IS NOT NULL"),
		}).
		OrderBy("c.created_at DESC").
		Limit(uint64(limit))

	builder = applySearch(builder, search)

	return r.queryListing(ctx, builder, "list manageable")
}

// ListByCreator returns a user's own collections, latest first.
func (r *Repo) ListByCreator(ctx context.Context, userID int64, search string, limit int) ([]domain.CollectionSummary, error) {
	builder := r.listBuilder().
		Where(squirrel.Eq{"c.creator_id": userID}).
		OrderBy("c.created_at DESC").
		Limit(uint64(limit))

	builder = applySearch(builder, search)

	return r.queryListing(ctx, builder, "list by creator")
}

// ---------------------------------------------------------------------------
// Query building
// ---------------------------------------------------------------------------

// listBuilder is the shared base for listing queries: not-deleted collections
// joined against follows for the follower count.
func (r *Repo) listBuilder() squirrel.SelectBuilder {
	return psql.
		Select(
			"c.id", "c.creator_id", "c.owner_id", "c.title", "c.description",
			"c.recommended", "c.deleted_at", "c.created_at", "c.updated_at",
			"COUNT(f.id) AS followers_count",
		).
		From("collections c").
		LeftJoin("collection_follows f ON f.collection_id = c.id").
		Where(notDeleted()).
		GroupBy("c.id")
}

// notDeleted is the explicit soft-delete filter; every listing opts in.
func notDeleted() squirrel.Sqlizer {
	return squirrel.Eq{"c.deleted_at": nil}
}

func applySearch(builder squirrel.SelectBuilder, search string) squirrel.SelectBuilder {
	if search == "" {
		return builder
	}
	pattern := "%" + search + "%"
	return builder.Where("(c.title ILIKE ? OR c.description ILIKE ?)", pattern, pattern)
}

func (r *Repo) queryListing(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]domain.CollectionSummary, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := []domain.CollectionSummary{}
	for rows.Next() {
		var c domain.CollectionSummary
		err := rows.Scan(
			&c.ID, &c.CreatorID, &c.OwnerID, &c.Title, &c.Description,
			&c.Recommended, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
			&c.FollowersCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanCollection(row pgx.Row) (*domain.Collection, error) {
	var c domain.Collection
	err := row.Scan(
		&c.ID, &c.CreatorID, &c.OwnerID, &c.Title, &c.Description,
		&c.Recommended, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
