package governance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// TransferOwnership hands the collection to a new owner. The owner change,
// the new owner's active membership and the audit event commit atomically; a
// failure on any of the three leaves ownership untouched. The creator keeps
// their manager role regardless of who owns the collection.
func (s *Service) TransferOwnership(ctx context.Context, input TransferInput) (*domain.Collection, error) {
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
	if err := ensureOwner(c, actor.ID); err != nil {
		return nil, err
	}

	newOwner, err := s.resolveNewOwner(ctx, input)
	if err != nil {
		return nil, err
	}
	if newOwner.ID == c.OwnerID {
		return nil, fmt.Errorf("user already owns this collection: %w", domain.ErrForbidden)
	}

	previousOwnerID := c.OwnerID
	err = s.recordTransition(ctx, c.ID, domain.EventOwnershipTransferred, func(txCtx context.Context) error {
		if setErr := s.collections.SetOwner(txCtx, c.ID, newOwner.ID); setErr != nil {
			return setErr
		}

		// The new owner gets an active membership so the record survives a
		// later transfer away from them.
		if _, upsertErr := s.memberships.Upsert(txCtx, &domain.CollectionMembership{
			CollectionID:  c.ID,
			UserID:        newOwner.ID,
			Status:        domain.MembershipActive,
			Source:        domain.SourceSystem,
			RequestedByID: actor.ID,
			ActedByID:     &actor.ID,
		}); upsertErr != nil {
			return upsertErr
		}

		_, eventErr := s.events.Create(txCtx, &domain.CollectionRoleEvent{
			CollectionID: c.ID,
			Type:         domain.EventOwnershipTransferred,
			ActorID:      actor.ID,
			TargetID:     &newOwner.ID,
			FromID:       &previousOwnerID,
			ToID:         &newOwner.ID,
		})
		return eventErr
	})
	if err != nil {
		return nil, err
	}

	c.OwnerID = newOwner.ID

	s.log.InfoContext(ctx, "ownership transferred",
		slog.String("collection_id", c.ID.String()),
		slog.Int64("from", previousOwnerID),
		slog.Int64("to", newOwner.ID),
	)

	return c, nil
}

func (s *Service) resolveNewOwner(ctx context.Context, input TransferInput) (*domain.UserRef, error) {
	if input.NewOwnerID > 0 {
		u, err := s.users.ByID(ctx, input.NewOwnerID)
		if err != nil {
			return nil, fmt.Errorf("resolve new owner: %w", err)
		}
		return u, nil
	}
	u, err := s.users.ByUsername(ctx, strings.TrimSpace(input.NewOwnerUsername))
	if err != nil {
		return nil, fmt.Errorf("resolve new owner: %w", err)
	}
	return u, nil
}
