// Package governance implements the maintainer lifecycle of a collection:
// invitations, applications, approvals, removals and ownership transfer.
// Every transition rewrites the single (collection, user) membership record
// and appends an immutable role event in the same transaction.
package governance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

type collectionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	SetOwner(ctx context.Context, id uuid.UUID, ownerID int64) error
}

type membershipRepo interface {
	GetByUser(ctx context.Context, collectionID uuid.UUID, userID int64) (*domain.CollectionMembership, error)
	Upsert(ctx context.Context, m *domain.CollectionMembership) (*domain.CollectionMembership, error)
	UpdateStatus(ctx context.Context, collectionID uuid.UUID, userID int64, status domain.MembershipStatus, actedByID int64) (*domain.CollectionMembership, error)
	ListByStatus(ctx context.Context, collectionID uuid.UUID, status domain.MembershipStatus) ([]domain.CollectionMembership, error)
	IsActive(ctx context.Context, collectionID uuid.UUID, userID int64) (bool, error)
}

type eventLog interface {
	Create(ctx context.Context, e *domain.CollectionRoleEvent) (*domain.CollectionRoleEvent, error)
	ListByCollection(ctx context.Context, collectionID uuid.UUID, limit int) ([]domain.CollectionRoleEvent, error)
}

// userDirectory resolves forum users referenced by governance operations.
// Resolution failures surface as domain.ErrNotFound.
type userDirectory interface {
	ByID(ctx context.Context, id int64) (*domain.UserRef, error)
	ByUsername(ctx context.Context, username string) (*domain.UserRef, error)
}

type versionIndex interface {
	Touch(ctx context.Context, collectionID uuid.UUID) error
}

type metricsRecorder interface {
	RecordRoleTransition(eventType string)
	RecordCacheVersionBump()
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides maintainer governance operations.
type Service struct {
	collections collectionRepo
	memberships membershipRepo
	events      eventLog
	users       userDirectory
	versions    versionIndex
	metrics     metricsRecorder
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Governance service.
func NewService(
	log *slog.Logger,
	collections collectionRepo,
	memberships membershipRepo,
	events eventLog,
	users userDirectory,
	versions versionIndex,
	metrics metricsRecorder,
	tx txManager,
) *Service {
	return &Service{
		collections: collections,
		memberships: memberships,
		events:      events,
		users:       users,
		versions:    versions,
		metrics:     metrics,
		tx:          tx,
		log:         log.With("service", "governance"),
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

func ensureOwner(c *domain.Collection, userID int64) error {
	if !c.IsOwner(userID) {
		return fmt.Errorf("only the owner may do this: %w", domain.ErrForbidden)
	}
	return nil
}

func ensureManager(c *domain.Collection, userID int64) error {
	if !c.CanManage(userID) {
		return fmt.Errorf("only the owner or creator may do this: %w", domain.ErrForbidden)
	}
	return nil
}

// recordTransition runs fn transactionally, then bumps the cache version and
// the transition counter. The version bump is best effort; a failed bump never
// fails the transition.
func (s *Service) recordTransition(ctx context.Context, collectionID uuid.UUID, eventType domain.RoleEventType, fn func(ctx context.Context) error) error {
	if err := s.tx.RunInTx(ctx, fn); err != nil {
		return err
	}

	s.touch(ctx, collectionID)
	s.metrics.RecordRoleTransition(eventType.String())
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
