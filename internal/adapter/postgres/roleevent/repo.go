// Package roleevent implements the append-only role event log using
// PostgreSQL. Events are never updated or deleted.
package roleevent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres"
	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// Repo provides role event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new role event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const eventColumns = `id, collection_id, event_type, actor_id, target_id, from_id, to_id, metadata, created_at`

const createSQL = `
INSERT INTO collection_role_events (collection_id, event_type, actor_id, target_id, from_id, to_id, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + eventColumns

// Create appends an event to the log.
func (r *Repo) Create(ctx context.Context, e *domain.CollectionRoleEvent) (*domain.CollectionRoleEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal role event metadata: %w", err)
	}

	row := q.QueryRow(ctx, createSQL,
		e.CollectionID, e.Type, e.ActorID, e.TargetID, e.FromID, e.ToID, raw)
	created, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "role event", "new")
	}
	return created, nil
}

const listByCollectionSQL = `
SELECT ` + eventColumns + `
FROM collection_role_events
WHERE collection_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

// ListByCollection returns the newest events first.
func (r *Repo) ListByCollection(ctx context.Context, collectionID uuid.UUID, limit int) ([]domain.CollectionRoleEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCollectionSQL, collectionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list role events: %w", err)
	}
	defer rows.Close()

	events := []domain.CollectionRoleEvent{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("list role events: scan: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list role events: rows: %w", err)
	}

	return events, nil
}

func scanEvent(row pgx.Row) (*domain.CollectionRoleEvent, error) {
	var (
		e   domain.CollectionRoleEvent
		raw []byte
	)
	err := row.Scan(
		&e.ID, &e.CollectionID, &e.Type, &e.ActorID,
		&e.TargetID, &e.FromID, &e.ToID, &raw, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &e.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal role event metadata: %w", err)
		}
	}
	return &e, nil
}
