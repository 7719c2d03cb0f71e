package collection

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Follow subscribes the actor to a collection. Following twice is idempotent.
func (s *Service) Follow(ctx context.Context, collectionID uuid.UUID) (*domain.CollectionFollow, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.Get(ctx, collectionID); err != nil {
		return nil, err
	}

	f, err := s.follows.Create(ctx, collectionID, actor.ID)
	if err != nil {
		return nil, err
	}

	s.touch(ctx, collectionID)
	s.metrics.RecordCollectionMutation("follow")

	s.log.InfoContext(ctx, "collection followed",
		slog.String("collection_id", collectionID.String()),
		slog.Int64("user_id", actor.ID),
	)

	return f, nil
}

// Unfollow removes the actor's follow. Unfollowing something never followed
// is a no-op.
func (s *Service) Unfollow(ctx context.Context, collectionID uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.Get(ctx, collectionID); err != nil {
		return err
	}

	if err := s.follows.Delete(ctx, collectionID, actor.ID); err != nil {
		return err
	}

	s.touch(ctx, collectionID)
	s.metrics.RecordCollectionMutation("unfollow")

	s.log.InfoContext(ctx, "collection unfollowed",
		slog.String("collection_id", collectionID.String()),
		slog.Int64("user_id", actor.ID),
	)

	return nil
}
