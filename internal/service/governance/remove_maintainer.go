package governance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// RemoveMaintainer revokes a maintainer's rights. Only the owner may remove,
// and neither the creator nor the owner can be removed this way; ownership
// has to be transferred instead.
func (s *Service) RemoveMaintainer(ctx context.Context, input DecisionInput) (*domain.CollectionMembership, error) {
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
	if input.UserID == c.CreatorID || input.UserID == c.OwnerID {
		return nil, fmt.Errorf("the creator and owner cannot be removed: %w", domain.ErrForbidden)
	}

	existing, err := s.memberships.GetByUser(ctx, c.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !existing.IsActive() {
		return nil, fmt.Errorf("membership is %s, not active: %w", existing.Status, domain.ErrForbidden)
	}

	var saved *domain.CollectionMembership
	err = s.recordTransition(ctx, c.ID, domain.EventMaintainerRemoved, func(txCtx context.Context) error {
		m, updateErr := s.memberships.UpdateStatus(txCtx, c.ID, input.UserID, domain.MembershipRemoved, actor.ID)
		if updateErr != nil {
			return updateErr
		}

		_, eventErr := s.events.Create(txCtx, &domain.CollectionRoleEvent{
			CollectionID: c.ID,
			Type:         domain.EventMaintainerRemoved,
			ActorID:      actor.ID,
			TargetID:     &input.UserID,
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

	s.log.InfoContext(ctx, "maintainer removed",
		slog.String("collection_id", c.ID.String()),
		slog.Int64("user_id", input.UserID),
	)

	return saved, nil
}
