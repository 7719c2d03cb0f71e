package rediscache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// Keys builds versioned cache keys for the read paths. Each key embeds the
// version counter it depends on, so a Touch invalidates every key derived
// from that counter at once.
type Keys struct {
	index *Index
}

// NewKeys creates a key builder on top of the version index.
func NewKeys(index *Index) *Keys {
	return &Keys{index: index}
}

// Plaza keys the public listing by filter, search digest and limit.
func (k *Keys) Plaza(ctx context.Context, query domain.ListQuery) (string, error) {
	v, err := k.index.GlobalVersion(ctx)
	if err != nil {
		return "", err
	}
	return join(
		"collections", "plaza",
		fmt.Sprintf("v%d", v),
		"f"+query.Filter.String(),
		"q"+digest(query.Search),
		fmt.Sprintf("l%d", query.Limit),
	), nil
}

// Mine keys the manageable-collections listing, including the optional
// contains-target probe.
func (k *Keys) Mine(ctx context.Context, userID int64, query domain.ListQuery, containsTopicID, containsPostID int64) (string, error) {
	v, err := k.index.GlobalVersion(ctx)
	if err != nil {
		return "", err
	}
	return join(
		"collections", "mine",
		fmt.Sprintf("v%d", v),
		fmt.Sprintf("u%d", userID),
		"q"+digest(query.Search),
		fmt.Sprintf("l%d", query.Limit),
		fmt.Sprintf("t%d", containsTopicID),
		fmt.Sprintf("p%d", containsPostID),
	), nil
}

// ByUser keys a user's created-collections listing.
func (k *Keys) ByUser(ctx context.Context, userID int64, query domain.ListQuery) (string, error) {
	v, err := k.index.GlobalVersion(ctx)
	if err != nil {
		return "", err
	}
	return join(
		"collections", "by_user",
		fmt.Sprintf("v%d", v),
		fmt.Sprintf("u%d", userID),
		"q"+digest(query.Search),
		fmt.Sprintf("l%d", query.Limit),
	), nil
}

// Show keys a collection detail view.
func (k *Keys) Show(ctx context.Context, collectionID uuid.UUID) (string, error) {
	v, err := k.index.CollectionVersion(ctx, collectionID)
	if err != nil {
		return "", err
	}
	return join(
		"collections", "show",
		"c"+collectionID.String(),
		fmt.Sprintf("v%d", v),
	), nil
}

// RoleEvents keys a collection's role event listing.
func (k *Keys) RoleEvents(ctx context.Context, collectionID uuid.UUID, limit int) (string, error) {
	v, err := k.index.CollectionVersion(ctx, collectionID)
	if err != nil {
		return "", err
	}
	return join(
		"collections", "role_events",
		"c"+collectionID.String(),
		fmt.Sprintf("v%d", v),
		fmt.Sprintf("l%d", limit),
	), nil
}

// digest hashes free-form query input so it is key-safe and bounded.
func digest(value string) string {
	if value == "" {
		return "blank"
	}
	sum := sha1.Sum([]byte(value))
	return hex.EncodeToString(sum[:])
}

func join(parts ...string) string {
	return strings.Join(parts, ":")
}
