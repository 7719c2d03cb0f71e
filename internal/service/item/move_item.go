package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Move places an item at a new position, shifting the items in between by
// one. The requested position is clamped to [0, n-1]; moving an item onto
// its current position is a no-op.
func (s *Service) Move(ctx context.Context, input MoveInput) (*domain.CollectionItem, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.getCollection(ctx, input.CollectionID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureMaintainer(ctx, c, actor.ID); err != nil {
		return nil, err
	}

	var (
		moved   *domain.CollectionItem
		shifted bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.items.GetByID(txCtx, c.ID, input.ItemID)
		if getErr != nil {
			return getErr
		}

		count, countErr := s.items.Count(txCtx, c.ID)
		if countErr != nil {
			return fmt.Errorf("count items: %w", countErr)
		}

		destination := clampPosition(input.Position, count)
		if destination == current.Position {
			moved = current
			return nil
		}

		// Close the gap between the old and new slots before placing.
		if destination < current.Position {
			if shiftErr := s.items.ShiftRange(txCtx, c.ID, destination, current.Position-1, 1); shiftErr != nil {
				return shiftErr
			}
		} else {
			if shiftErr := s.items.ShiftRange(txCtx, c.ID, current.Position+1, destination, -1); shiftErr != nil {
				return shiftErr
			}
		}

		if posErr := s.items.UpdatePosition(txCtx, current.ID, destination); posErr != nil {
			return posErr
		}

		current.Position = destination
		moved = current
		shifted = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if shifted {
		s.touch(ctx, c.ID)
		s.metrics.RecordItemMutation("move")

		s.log.InfoContext(ctx, "item moved",
			slog.String("collection_id", c.ID.String()),
			slog.String("item_id", moved.ID.String()),
			slog.Int("position", moved.Position),
		)
	}

	return moved, nil
}

// clampPosition bounds a requested position to the occupied range. An empty
// collection clamps everything to zero.
func clampPosition(position, count int) int {
	if position < 0 {
		position = 0
	}
	last := count - 1
	if last < 0 {
		last = 0
	}
	if position > last {
		position = last
	}
	return position
}
