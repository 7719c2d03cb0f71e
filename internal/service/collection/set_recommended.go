package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// SetRecommended toggles the staff-controlled recommended flag.
func (s *Service) SetRecommended(ctx context.Context, input SetRecommendedInput) (*domain.Collection, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !actor.Staff {
		return nil, fmt.Errorf("only staff may recommend collections: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.collections.SetRecommended(ctx, input.CollectionID, input.Recommended)
	if err != nil {
		return nil, err
	}

	s.touch(ctx, updated.ID)
	s.metrics.RecordCollectionMutation("set_recommended")

	s.log.InfoContext(ctx, "collection recommendation changed",
		slog.String("collection_id", updated.ID.String()),
		slog.Int64("actor_id", actor.ID),
		slog.Bool("recommended", input.Recommended),
	)

	return updated, nil
}
