// Package rediscache implements the cache version index on Redis.
//
// Mutations never delete cached entries. They bump monotonic version
// counters instead, and because every cache key embeds the version it
// depends on, stale entries become unreachable and age out via TTL.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	globalVersionKey           = "collections:global_version"
	collectionVersionKeyPrefix = "collections:collection_version"
)

// Index tracks the global and per-collection cache versions.
type Index struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIndex creates a version index. ttl bounds how long an untouched version
// counter survives; a counter expiring resets the version to zero, which is
// safe because zero is also the version of a never-touched collection.
func NewIndex(client *redis.Client, ttl time.Duration) *Index {
	return &Index{client: client, ttl: ttl}
}

// Connect dials Redis and verifies the connection.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// Touch bumps the global version and the collection's own version. Called
// after every mutation that changes what listings or detail views would show.
func (i *Index) Touch(ctx context.Context, collectionID uuid.UUID) error {
	if err := i.bump(ctx, globalVersionKey); err != nil {
		return err
	}
	return i.bump(ctx, collectionVersionKey(collectionID))
}

// GlobalVersion returns the current global version. A missing counter reads
// as zero.
func (i *Index) GlobalVersion(ctx context.Context) (int64, error) {
	return i.read(ctx, globalVersionKey)
}

// CollectionVersion returns the collection's current version. A missing
// counter reads as zero.
func (i *Index) CollectionVersion(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	return i.read(ctx, collectionVersionKey(collectionID))
}

func (i *Index) bump(ctx context.Context, key string) error {
	pipe := i.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, i.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("bump version %s: %w", key, err)
	}
	return nil
}

func (i *Index) read(ctx context.Context, key string) (int64, error) {
	v, err := i.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read version %s: %w", key, err)
	}
	return v, nil
}

func collectionVersionKey(collectionID uuid.UUID) string {
	return collectionVersionKeyPrefix + ":" + collectionID.String()
}
