package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Update rewrites a collection's title and description. Only the owner and
// the creator may edit metadata; active maintainers curate items but do not
// manage the collection itself.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Collection, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, input.CollectionID)
	if err != nil {
		return nil, err
	}
	if !current.CanManage(actor.ID) {
		return nil, fmt.Errorf("only the owner or creator may edit the collection: %w", domain.ErrForbidden)
	}

	updated, err := s.collections.Update(ctx, input.CollectionID, strings.TrimSpace(input.Title), trimOrNil(input.Description))
	if err != nil {
		return nil, err
	}

	s.touch(ctx, updated.ID)
	s.metrics.RecordCollectionMutation("update")

	s.log.InfoContext(ctx, "collection updated",
		slog.String("collection_id", updated.ID.String()),
		slog.Int64("actor_id", actor.ID),
	)

	return updated, nil
}
