package governance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Apply files the actor's request to become a maintainer. Owners and already
// active maintainers have nothing to apply for; re-applying after a removal
// or a withdrawn application rewrites the same record back to pending.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (*domain.CollectionMembership, error) {
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
	if c.IsOwner(actor.ID) {
		return nil, fmt.Errorf("the owner is already a maintainer: %w", domain.ErrForbidden)
	}

	existing, err := s.memberships.GetByUser(ctx, c.ID, actor.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsActive() {
		return nil, fmt.Errorf("already a maintainer: %w", domain.ErrForbidden)
	}

	var saved *domain.CollectionMembership
	err = s.recordTransition(ctx, c.ID, domain.EventMaintainerApplied, func(txCtx context.Context) error {
		m, upsertErr := s.memberships.Upsert(txCtx, &domain.CollectionMembership{
			CollectionID:  c.ID,
			UserID:        actor.ID,
			Status:        domain.MembershipPending,
			Source:        domain.SourceSelfNomination,
			RequestedByID: actor.ID,
			Note:          trimOrNil(input.Note),
		})
		if upsertErr != nil {
			return upsertErr
		}

		_, eventErr := s.events.Create(txCtx, &domain.CollectionRoleEvent{
			CollectionID: c.ID,
			Type:         domain.EventMaintainerApplied,
			ActorID:      actor.ID,
			TargetID:     &actor.ID,
		})
		if eventErr != nil {
			return eventErr
		}

		saved = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "maintainer application filed",
		slog.String("collection_id", c.ID.String()),
		slog.Int64("user_id", actor.ID),
	)

	return saved, nil
}
