// Package collection implements collection lifecycle and listing operations.
package collection

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

type collectionRepo interface {
	Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	Update(ctx context.Context, id uuid.UUID, title string, description *string) (*domain.Collection, error)
	SetRecommended(ctx context.Context, id uuid.UUID, recommended bool) (*domain.Collection, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	CountByCreator(ctx context.Context, userID int64) (int, error)
	ListPlaza(ctx context.Context, query domain.ListQuery) ([]domain.CollectionSummary, error)
	ListManageableBy(ctx context.Context, userID int64, search string, limit int) ([]domain.CollectionSummary, error)
	ListByCreator(ctx context.Context, userID int64, search string, limit int) ([]domain.CollectionSummary, error)
}

type membershipRepo interface {
	Upsert(ctx context.Context, m *domain.CollectionMembership) (*domain.CollectionMembership, error)
}

type followRepo interface {
	Create(ctx context.Context, collectionID uuid.UUID, userID int64) (*domain.CollectionFollow, error)
	Delete(ctx context.Context, collectionID uuid.UUID, userID int64) error
}

type itemProbe interface {
	ExistsTopic(ctx context.Context, collectionID uuid.UUID, topicID int64) (bool, error)
	ExistsPost(ctx context.Context, collectionID uuid.UUID, postID int64) (bool, error)
}

type versionIndex interface {
	Touch(ctx context.Context, collectionID uuid.UUID) error
}

type metricsRecorder interface {
	RecordCollectionMutation(operation string)
	RecordCacheVersionBump()
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits holds the creation gates applied by Create.
type Limits struct {
	MinTrustLevelToCreate int
	MaxPerUser            int
}

// Service provides collection management operations.
type Service struct {
	collections collectionRepo
	memberships membershipRepo
	follows     followRepo
	items       itemProbe
	versions    versionIndex
	metrics     metricsRecorder
	tx          txManager
	limits      Limits
	log         *slog.Logger
}

// NewService creates a new Collection service.
func NewService(
	log *slog.Logger,
	collections collectionRepo,
	memberships membershipRepo,
	follows followRepo,
	items itemProbe,
	versions versionIndex,
	metrics metricsRecorder,
	tx txManager,
	limits Limits,
) *Service {
	return &Service{
		collections: collections,
		memberships: memberships,
		follows:     follows,
		items:       items,
		versions:    versions,
		metrics:     metrics,
		tx:          tx,
		limits:      limits,
		log:         log.With("service", "collection"),
	}
}

// touch bumps the cache version index. Bump failures never fail the mutation
// that triggered them; stale cache entries expire on their own.
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
