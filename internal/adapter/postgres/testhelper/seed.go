package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCollection creates a collection owned and created by the given user.
// Returns the filled domain.Collection.
func SeedCollection(t *testing.T, pool *pgxpool.Pool, creatorID int64) domain.Collection {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Collection{
		ID:        uuid.New(),
		CreatorID: creatorID,
		OwnerID:   creatorID,
		Title:     "Test Collection " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO collections (id, creator_id, owner_id, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.CreatorID, c.OwnerID, c.Title, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCollection insert: %v", err)
	}

	return c
}

// SeedItem appends a topic item at the given position.
func SeedItem(t *testing.T, pool *pgxpool.Pool, collectionID uuid.UUID, topicID int64, position int) domain.CollectionItem {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.CollectionItem{
		ID:            uuid.New(),
		CollectionID:  collectionID,
		TopicID:       topicID,
		Position:      position,
		CollectedAt:   now,
		CollectedByID: 1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO collection_items (id, collection_id, topic_id, position, collected_at, collected_by_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.CollectionID, item.TopicID, item.Position,
		item.CollectedAt, item.CollectedByID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}

// SeedMembership creates a membership record in the given status.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, collectionID uuid.UUID, userID int64, status domain.MembershipStatus) domain.CollectionMembership {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.CollectionMembership{
		ID:            uuid.New(),
		CollectionID:  collectionID,
		UserID:        userID,
		Status:        status,
		Source:        domain.SourceOwnerInvitation,
		RequestedByID: userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO collection_memberships (id, collection_id, user_id, status, source, requested_by_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.CollectionID, m.UserID, string(m.Status), string(m.Source), m.RequestedByID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMembership insert: %v", err)
	}

	return m
}

// SeedFollow makes the user follow the collection.
func SeedFollow(t *testing.T, pool *pgxpool.Pool, collectionID uuid.UUID, userID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO collection_follows (collection_id, user_id) VALUES ($1, $2)`,
		collectionID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFollow insert: %v", err)
	}
}
