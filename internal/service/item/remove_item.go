package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Remove deletes an item and renumbers the survivors back to a dense 0..n-1
// sequence in the same transaction.
func (s *Service) Remove(ctx context.Context, input RemoveInput) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	c, err := s.getCollection(ctx, input.CollectionID)
	if err != nil {
		return err
	}
	if err := s.ensureMaintainer(ctx, c, actor.ID); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.items.Delete(txCtx, c.ID, input.ItemID); delErr != nil {
			return delErr
		}
		return s.normalizePositions(txCtx, c.ID)
	})
	if err != nil {
		return err
	}

	s.touch(ctx, c.ID)
	s.metrics.RecordItemMutation("remove")

	s.log.InfoContext(ctx, "item removed",
		slog.String("collection_id", c.ID.String()),
		slog.String("item_id", input.ItemID.String()),
	)

	return nil
}

// normalizePositions rewrites positions to 0..n-1 in (position, id) order,
// skipping items already in place.
func (s *Service) normalizePositions(ctx context.Context, collectionID uuid.UUID) error {
	items, err := s.items.ListByCollection(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("list items for renumber: %w", err)
	}

	for index, it := range items {
		if it.Position == index {
			continue
		}
		if err := s.items.UpdatePosition(ctx, it.ID, index); err != nil {
			return fmt.Errorf("renumber item %s: %w", it.ID, err)
		}
	}
	return nil
}
