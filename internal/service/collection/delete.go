package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Delete soft-deletes a collection. The tombstone keeps items, memberships
// and the role event log intact; deleting an already-deleted collection is
// a no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("collection_id", "required")
	}

	current, err := s.collections.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.CanManage(actor.ID) {
		return fmt.Errorf("only the owner or creator may delete the collection: %w", domain.ErrForbidden)
	}
	if current.IsDeleted() {
		return nil
	}

	if err := s.collections.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.touch(ctx, id)
	s.metrics.RecordCollectionMutation("delete")

	s.log.InfoContext(ctx, "collection deleted",
		slog.String("collection_id", id.String()),
		slog.Int64("actor_id", actor.ID),
	)

	return nil
}
