package governance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Invite grants a user maintainer rights directly. Only the owner and the
// creator may invite; the invitation source records which of the two acted.
func (s *Service) Invite(ctx context.Context, input InviteInput) (*domain.CollectionMembership, error) {
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
	if err := ensureManager(c, actor.ID); err != nil {
		return nil, err
	}

	invitee, err := s.users.ByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve invitee: %w", err)
	}

	source := domain.SourceOwnerInvitation
	if actor.ID == c.CreatorID && actor.ID != c.OwnerID {
		source = domain.SourceCreatorInvitation
	}

	var saved *domain.CollectionMembership
	err = s.recordTransition(ctx, c.ID, domain.EventMaintainerInvited, func(txCtx context.Context) error {
		m, upsertErr := s.memberships.Upsert(txCtx, &domain.CollectionMembership{
			CollectionID:  c.ID,
			UserID:        invitee.ID,
			Status:        domain.MembershipActive,
			Source:        source,
			RequestedByID: actor.ID,
			ActedByID:     &actor.ID,
			Note:          trimOrNil(input.Note),
		})
		if upsertErr != nil {
			return upsertErr
		}

		_, eventErr := s.events.Create(txCtx, &domain.CollectionRoleEvent{
			CollectionID: c.ID,
			Type:         domain.EventMaintainerInvited,
			ActorID:      actor.ID,
			TargetID:     &invitee.ID,
			Metadata:     map[string]any{"source": source.String()},
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

	s.log.InfoContext(ctx, "maintainer invited",
		slog.String("collection_id", c.ID.String()),
		slog.Int64("user_id", invitee.ID),
		slog.String("source", source.String()),
	)

	return saved, nil
}
