// Package item implements curation of collection items: adding, removing and
// reordering collected topics and posts. Positions within a collection always
// form a dense 0..n-1 sequence after every operation.
package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

type itemRepo interface {
	Create(ctx context.Context, item *domain.CollectionItem) (*domain.CollectionItem, error)
	GetByID(ctx context.Context, collectionID, itemID uuid.UUID) (*domain.CollectionItem, error)
	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.CollectionItem, error)
	Count(ctx context.Context, collectionID uuid.UUID) (int, error)
	MaxPosition(ctx context.Context, collectionID uuid.UUID) (int, error)
	ExistsTopic(ctx context.Context, collectionID uuid.UUID, topicID int64) (bool, error)
	ExistsPost(ctx context.Context, collectionID uuid.UUID, postID int64) (bool, error)
	Delete(ctx context.Context, collectionID, itemID uuid.UUID) error
	UpdatePosition(ctx context.Context, itemID uuid.UUID, position int) error
	ShiftRange(ctx context.Context, collectionID uuid.UUID, lo, hi, delta int) error
}

type collectionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
}

type membershipRepo interface {
	IsActive(ctx context.Context, collectionID uuid.UUID, userID int64) (bool, error)
}

// contentResolver looks up forum content referenced by items. Resolution
// failures surface as domain.ErrNotFound.
type contentResolver interface {
	Topic(ctx context.Context, id int64) (*domain.TopicRef, error)
	Post(ctx context.Context, id int64) (*domain.PostRef, error)
}

type notifier interface {
	ContentCollected(ctx context.Context, n domain.CollectedNotification) error
}

type versionIndex interface {
	Touch(ctx context.Context, collectionID uuid.UUID) error
}

type metricsRecorder interface {
	RecordItemMutation(operation string)
	RecordCacheVersionBump()
	RecordNotificationSent()
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides collection item curation operations.
type Service struct {
	items       itemRepo
	collections collectionRepo
	memberships membershipRepo
	content     contentResolver
	notify      notifier
	versions    versionIndex
	metrics     metricsRecorder
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Item service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	collections collectionRepo,
	memberships membershipRepo,
	content contentResolver,
	notify notifier,
	versions versionIndex,
	metrics metricsRecorder,
	tx txManager,
) *Service {
	return &Service{
		items:       items,
		collections: collections,
		memberships: memberships,
		content:     content,
		notify:      notify,
		versions:    versions,
		metrics:     metrics,
		tx:          tx,
		log:         log.With("service", "item"),
	}
}

// getCollection loads a collection, treating tombstones as missing.
func (s *Service) getCollection(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	c, err := s.collections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsDeleted() {
		return nil, fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// ensureMaintainer checks that the actor may curate items: the owner always
// can, anyone else needs an active membership.
func (s *Service) ensureMaintainer(ctx context.Context, c *domain.Collection, userID int64) error {
	if c.IsOwner(userID) {
		return nil
	}
	active, err := s.memberships.IsActive(ctx, c.ID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !active {
		return fmt.Errorf("only maintainers may curate items: %w", domain.ErrForbidden)
	}
	return nil
}

func (s *Service) touch(ctx context.Context, collectionID uuid.UUID) {
	if err := s.versions.Touch(ctx, collectionID); err != nil {
		s.log.WarnContext(ctx, "cache version bump failed",
			slog.String("collection_id", collectionID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.metrics.RecordCacheVersionBump()
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
