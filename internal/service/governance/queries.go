package governance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// IsMaintainer reports whether the user may curate the collection's items.
// The owner always may; anyone else needs an active membership.
func (s *Service) IsMaintainer(ctx context.Context, collectionID uuid.UUID, userID int64) (bool, error) {
	if collectionID == uuid.Nil || userID <= 0 {
		return false, domain.NewValidationError("target", "collection and user are required")
	}

	c, err := s.getCollection(ctx, collectionID)
	if err != nil {
		return false, err
	}
	if c.IsOwner(userID) {
		return true, nil
	}
	return s.memberships.IsActive(ctx, collectionID, userID)
}

// ListMaintainers returns the collection's active maintainers, oldest first.
// The owner is implied by the collection record and not duplicated here.
func (s *Service) ListMaintainers(ctx context.Context, collectionID uuid.UUID) ([]domain.CollectionMembership, error) {
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("collection_id", "required")
	}

	if _, err := s.getCollection(ctx, collectionID); err != nil {
		return nil, err
	}
	return s.memberships.ListByStatus(ctx, collectionID, domain.MembershipActive)
}

// ListPending returns the applications awaiting review. Only the owner and
// the creator see the queue.
func (s *Service) ListPending(ctx context.Context, collectionID uuid.UUID) ([]domain.CollectionMembership, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("collection_id", "required")
	}

	c, err := s.getCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if err := ensureManager(c, actor.ID); err != nil {
		return nil, err
	}
	return s.memberships.ListByStatus(ctx, collectionID, domain.MembershipPending)
}

// ListRoleEvents returns the collection's governance history, newest first.
func (s *Service) ListRoleEvents(ctx context.Context, input ListRoleEventsInput) ([]domain.CollectionRoleEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.getCollection(ctx, input.CollectionID); err != nil {
		return nil, err
	}

	events, err := s.events.ListByCollection(ctx, input.CollectionID, domain.ClampLimit(input.Limit))
	if err != nil {
		return nil, fmt.Errorf("list role events: %w", err)
	}
	return events, nil
}
