package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// Add collects a topic or post into the collection, appending it at the end
// of the order. Collecting a target the collection already holds returns
// domain.ErrConflict. The content's author is notified unless they collected
// it themselves.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.CollectionItem, error) {
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
	if err := s.ensureMaintainer(ctx, c, actor.ID); err != nil {
		return nil, err
	}

	target, authorID, postNumber, err := s.resolveTarget(ctx, input)
	if err != nil {
		return nil, err
	}

	var created *domain.CollectionItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, existsErr := s.targetExists(txCtx, c.ID, target)
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return fmt.Errorf("item already exists in this collection: %w", domain.ErrConflict)
		}

		maxPos, maxErr := s.items.MaxPosition(txCtx, c.ID)
		if maxErr != nil {
			return fmt.Errorf("max position: %w", maxErr)
		}

		newItem := &domain.CollectionItem{
			CollectionID:  c.ID,
			TopicID:       target.TopicID(),
			Position:      maxPos + 1,
			Note:          trimOrNil(input.Note),
			CollectedByID: actor.ID,
		}
		if postID, isPost := target.PostID(); isPost {
			newItem.PostID = &postID
		}

		var createErr error
		created, createErr = s.items.Create(txCtx, newItem)
		if createErr != nil {
			// A concurrent add of the same target loses the race at the
			// unique index rather than at the exists check.
			if errors.Is(createErr, domain.ErrAlreadyExists) {
				return fmt.Errorf("item already exists in this collection: %w", domain.ErrConflict)
			}
			return createErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.touch(ctx, c.ID)
	s.metrics.RecordItemMutation("add")

	s.notifyAuthor(ctx, c, created, actor, authorID, postNumber)

	s.log.InfoContext(ctx, "item collected",
		slog.String("collection_id", c.ID.String()),
		slog.String("item_id", created.ID.String()),
		slog.Int64("topic_id", created.TopicID),
		slog.Int("position", created.Position),
	)

	return created, nil
}

// resolveTarget turns the raw ids into a validated target plus the content
// author and post number used for notification.
func (s *Service) resolveTarget(ctx context.Context, input AddInput) (domain.ItemTarget, int64, int, error) {
	if input.PostID > 0 {
		post, err := s.content.Post(ctx, input.PostID)
		if err != nil {
			return domain.ItemTarget{}, 0, 0, fmt.Errorf("resolve post %d: %w", input.PostID, err)
		}
		target, err := domain.NewPostTarget(*post)
		if err != nil {
			return domain.ItemTarget{}, 0, 0, err
		}
		return target, post.AuthorID, post.Number, nil
	}

	topic, err := s.content.Topic(ctx, input.TopicID)
	if err != nil {
		return domain.ItemTarget{}, 0, 0, fmt.Errorf("resolve topic %d: %w", input.TopicID, err)
	}
	target, err := domain.NewTopicTarget(*topic)
	if err != nil {
		return domain.ItemTarget{}, 0, 0, err
	}
	return target, topic.AuthorID, 1, nil
}

func (s *Service) targetExists(ctx context.Context, collectionID uuid.UUID, target domain.ItemTarget) (bool, error) {
	if postID, isPost := target.PostID(); isPost {
		return s.items.ExistsPost(ctx, collectionID, postID)
	}
	return s.items.ExistsTopic(ctx, collectionID, target.TopicID())
}

// notifyAuthor tells the content author their work was collected. Delivery is
// best effort; a failed notification never fails the add.
func (s *Service) notifyAuthor(ctx context.Context, c *domain.Collection, item *domain.CollectionItem, actor domain.Actor, authorID int64, postNumber int) {
	if authorID == 0 || authorID == actor.ID {
		return
	}

	err := s.notify.ContentCollected(ctx, domain.CollectedNotification{
		AuthorID:        authorID,
		CollectorID:     actor.ID,
		CollectionTitle: c.Title,
		TopicID:         item.TopicID,
		PostNumber:      postNumber,
	})
	if err != nil {
		s.log.WarnContext(ctx, "collected notification failed",
			slog.Int64("author_id", authorID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.metrics.RecordNotificationSent()
}
