package item

import (
	"context"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// List returns a collection's items in display order. Reading is public;
// only the collection's existence is checked.
func (s *Service) List(ctx context.Context, collectionID uuid.UUID) ([]domain.CollectionItem, error) {
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("collection_id", "required")
	}

	if _, err := s.getCollection(ctx, collectionID); err != nil {
		return nil, err
	}

	return s.items.ListByCollection(ctx, collectionID)
}

// ContainsTopic reports whether the collection holds the whole topic.
func (s *Service) ContainsTopic(ctx context.Context, collectionID uuid.UUID, topicID int64) (bool, error) {
	if collectionID == uuid.Nil || topicID <= 0 {
		return false, domain.NewValidationError("target", "collection and topic are required")
	}
	return s.items.ExistsTopic(ctx, collectionID, topicID)
}

// ContainsPost reports whether the collection holds the post.
func (s *Service) ContainsPost(ctx context.Context, collectionID uuid.UUID, postID int64) (bool, error) {
	if collectionID == uuid.Nil || postID <= 0 {
		return false, domain.NewValidationError("target", "collection and post are required")
	}
	return s.items.ExistsPost(ctx, collectionID, postID)
}
