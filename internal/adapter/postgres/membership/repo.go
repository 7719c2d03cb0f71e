// Package membership implements the CollectionMembership repository using
// PostgreSQL. One row per (collection, user) pair; the governance service
// rewrites the same row as the member moves through the state machine.
package membership

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres"
	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// Repo provides membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new membership repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const membershipColumns = `id, collection_id, user_id, status, source, requested_by_id, acted_by_id, note, created_at, updated_at`

const getByUserSQL = `
SELECT ` + membershipColumns + `
FROM collection_memberships
WHERE collection_id = $1 AND user_id = $2`

// GetByUser returns the membership record for a user in a collection.
func (r *Repo) GetByUser(ctx context.Context, collectionID uuid.UUID, userID int64) (*domain.CollectionMembership, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByUserSQL, collectionID, userID)
	m, err := scanMembership(row)
	if err != nil {
		return nil, postgres.MapError(err, "membership", fmt.Sprintf("%s/%d", collectionID, userID))
	}
	return m, nil
}

const upsertSQL = `
INSERT INTO collection_memberships (collection_id, user_id, status, source, requested_by_id, acted_by_id, note)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (collection_id, user_id) DO UPDATE SET
    status = EXCLUDED.status,
    source = EXCLUDED.source,
    requested_by_id = EXCLUDED.requested_by_id,
    acted_by_id = EXCLUDED.acted_by_id,
    note = COALESCE(EXCLUDED.note, collection_memberships.note),
    updated_at = now()
RETURNING ` + membershipColumns

// Upsert creates the (collection, user) record or rewrites the existing one.
// A nil note keeps whatever note the record already carries.
func (r *Repo) Upsert(ctx context.Context, m *domain.CollectionMembership) (*domain.CollectionMembership, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, upsertSQL,
		m.CollectionID, m.UserID, m.Status, m.Source, m.RequestedByID, m.ActedByID, m.Note)
	saved, err := scanMembership(row)
	if err != nil {
		return nil, postgres.MapError(err, "membership", fmt.Sprintf("%s/%d", m.CollectionID, m.UserID))
	}
	return saved, nil
}

const updateStatusSQL = `
UPDATE collection_memberships
SET status = $3, acted_by_id = $4, updated_at = now()
WHERE collection_id = $1 AND user_id = $2
RETURNING ` + membershipColumns

// UpdateStatus moves an existing membership to a new status and records who
// acted. Returns domain.ErrNotFound when no record exists.
func (r *Repo) UpdateStatus(ctx context.Context, collectionID uuid.UUID, userID int64, status domain.MembershipStatus, actedByID int64) (*domain.CollectionMembership, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateStatusSQL, collectionID, userID, status, actedByID)
	m, err := scanMembership(row)
	if err != nil {
		return nil, postgres.MapError(err, "membership", fmt.Sprintf("%s/%d", collectionID, userID))
	}
	return m, nil
}

const listByStatusSQL = `
SELECT ` + membershipColumns + `
FROM collection_memberships
WHERE collection_id = $1 AND status = $2
ORDER BY created_at, id`

// ListByStatus returns a collection's memberships in the given status,
// oldest first.
func (r *Repo) ListByStatus(ctx context.Context, collectionID uuid.UUID, status domain.MembershipStatus) ([]domain.CollectionMembership, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByStatusSQL, collectionID, status)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	memberships := []domain.CollectionMembership{}
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("list memberships: scan: %w", err)
		}
		memberships = append(memberships, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list memberships: rows: %w", err)
	}

	return memberships, nil
}

const isActiveSQL = `
SELECT EXISTS (
    SELECT 1 FROM collection_memberships
    WHERE collection_id = $1 AND user_id = $2 AND status = 'active'
)`

// IsActive reports whether the user holds an active membership.
func (r *Repo) IsActive(ctx context.Context, collectionID uuid.UUID, userID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var active bool
	if err := q.QueryRow(ctx, isActiveSQL, collectionID, userID).Scan(&active); err != nil {
		return false, fmt.Errorf("membership is active: %w", err)
	}
	return active, nil
}

func scanMembership(row pgx.Row) (*domain.CollectionMembership, error) {
	var m domain.CollectionMembership
	err := row.Scan(
		&m.ID, &m.CollectionID, &m.UserID, &m.Status, &m.Source,
		&m.RequestedByID, &m.ActedByID, &m.Note, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
