package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Create creates a collection owned by the actor and seeds the actor's own
// active maintainer membership in the same transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Collection, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if actor.TrustLevel < s.limits.MinTrustLevelToCreate {
		return nil, fmt.Errorf("trust level too low to create a collection: %w", domain.ErrLimitExceeded)
	}

	count, err := s.collections.CountByCreator(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("count collections: %w", err)
	}
	if count >= s.limits.MaxPerUser {
		return nil, fmt.Errorf("collection limit reached (max %d): %w", s.limits.MaxPerUser, domain.ErrLimitExceeded)
	}

	title := strings.TrimSpace(input.Title)
	description := trimOrNil(input.Description)

	var created *domain.Collection
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.collections.Create(txCtx, &domain.Collection{
			CreatorID:   actor.ID,
			OwnerID:     actor.ID,
			Title:       title,
			Description: description,
		})
		if createErr != nil {
			return fmt.Errorf("create collection: %w", createErr)
		}

		// The creator starts out as an active maintainer.
		actedBy := actor.ID
		if _, upsertErr := s.memberships.Upsert(txCtx, &domain.CollectionMembership{
			CollectionID:  created.ID,
			UserID:        actor.ID,
			Status:        domain.MembershipActive,
			Source:        domain.SourceSystem,
			RequestedByID: actor.ID,
			ActedByID:     &actedBy,
		}); upsertErr != nil {
			return fmt.Errorf("bootstrap creator membership: %w", upsertErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.touch(ctx, created.ID)
	s.metrics.RecordCollectionMutation("create")

	s.log.InfoContext(ctx, "collection created",
		slog.String("collection_id", created.ID.String()),
		slog.Int64("creator_id", actor.ID),
		slog.String("title", title),
	)

	return created, nil
}
