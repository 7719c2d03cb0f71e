package governance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Approve accepts a pending application, making the applicant an active
// maintainer. Only the owner decides applications.
func (s *Service) Approve(ctx context.Context, input DecisionInput) (*domain.CollectionMembership, error) {
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

	existing, err := s.memberships.GetByUser(ctx, c.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !existing.IsPending() {
		return nil, fmt.Errorf("membership is %s, not pending: %w", existing.Status, domain.ErrForbidden)
	}

	var saved *domain.CollectionMembership
	err = s.recordTransition(ctx, c.ID, domain.EventMaintainerApproved, func(txCtx context.Context) error {
		m, updateErr := s.memberships.UpdateStatus(txCtx, c.ID, input.UserID, domain.MembershipActive, actor.ID)
		if updateErr != nil {
			return updateErr
		}

		_, eventErr := s.events.Create(txCtx, &domain.CollectionRoleEvent{
			CollectionID: c.ID,
			Type:         domain.EventMaintainerApproved,
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

	s.log.InfoContext(ctx, "maintainer application approved",
		slog.String("collection_id", c.ID.String()),
		slog.Int64("user_id", input.UserID),
	)

	return saved, nil
}
