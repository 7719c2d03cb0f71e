package governance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

var (
	_ collectionRepo  = &collectionRepoMock{}
	_ membershipRepo  = &membershipRepoMock{}
	_ eventLog        = &eventLogMock{}
	_ userDirectory   = &userDirectoryMock{}
	_ versionIndex    = &versionIndexMock{}
	_ metricsRecorder = &metricsRecorderMock{}
	_ txManager       = &txManagerMock{}
)

type setOwnerCall struct {
	CollectionID uuid.UUID
	OwnerID      int64
}

type collectionRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	SetOwnerFunc func(ctx context.Context, id uuid.UUID, ownerID int64) error

	mu    sync.Mutex
	calls struct {
		SetOwner []setOwnerCall
	}
}

func (m *collectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *collectionRepoMock) SetOwner(ctx context.Context, id uuid.UUID, ownerID int64) error {
	m.mu.Lock()
	m.calls.SetOwner = append(m.calls.SetOwner, setOwnerCall{CollectionID: id, OwnerID: ownerID})
	m.mu.Unlock()
	if m.SetOwnerFunc == nil {
		return nil
	}
	return m.SetOwnerFunc(ctx, id, ownerID)
}

func (m *collectionRepoMock) SetOwnerCalls() []setOwnerCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetOwner
}

type statusCall struct {
	CollectionID uuid.UUID
	UserID       int64
	Status       domain.MembershipStatus
	ActedByID    int64
}

type membershipRepoMock struct {
	GetByUserFunc    func(ctx context.Context, collectionID uuid.UUID, userID int64) (*domain.CollectionMembership, error)
	UpsertFunc       func(ctx context.Context, m *domain.CollectionMembership) (*domain.CollectionMembership, error)
	UpdateStatusFunc func(ctx context.Context, collectionID uuid.UUID, userID int64, status domain.MembershipStatus, actedByID int64) (*domain.CollectionMembership, error)
	ListByStatusFunc func(ctx context.Context, collectionID uuid.UUID, status domain.MembershipStatus) ([]domain.CollectionMembership, error)
	IsActiveFunc     func(ctx context.Context, collectionID uuid.UUID, userID int64) (bool, error)

	mu    sync.Mutex
	calls struct {
		Upsert       []*domain.CollectionMembership
		UpdateStatus []statusCall
	}
}

func (m *membershipRepoMock) GetByUser(ctx context.Context, collectionID uuid.UUID, userID int64) (*domain.CollectionMembership, error) {
	return m.GetByUserFunc(ctx, collectionID, userID)
}

func (m *membershipRepoMock) Upsert(ctx context.Context, membership *domain.CollectionMembership) (*domain.CollectionMembership, error) {
	m.mu.Lock()
	m.calls.Upsert = append(m.calls.Upsert, membership)
	m.mu.Unlock()
	if m.UpsertFunc == nil {
		saved := *membership
		saved.ID = uuid.New()
		return &saved, nil
	}
	return m.UpsertFunc(ctx, membership)
}

func (m *membershipRepoMock) UpsertCalls() []*domain.CollectionMembership {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Upsert
}

func (m *membershipRepoMock) UpdateStatus(ctx context.Context, collectionID uuid.UUID, userID int64, status domain.MembershipStatus, actedByID int64) (*domain.CollectionMembership, error) {
	m.mu.Lock()
	m.calls.UpdateStatus = append(m.calls.UpdateStatus, statusCall{
		CollectionID: collectionID, UserID: userID, Status: status, ActedByID: actedByID,
	})
	m.mu.Unlock()
	if m.UpdateStatusFunc == nil {
		return &domain.CollectionMembership{
			ID: uuid.New(), CollectionID: collectionID, UserID: userID,
			Status: status, ActedByID: &actedByID,
		}, nil
	}
	return m.UpdateStatusFunc(ctx, collectionID, userID, status, actedByID)
}

func (m *membershipRepoMock) UpdateStatusCalls() []statusCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateStatus
}

func (m *membershipRepoMock) ListByStatus(ctx context.Context, collectionID uuid.UUID, status domain.MembershipStatus) ([]domain.CollectionMembership, error) {
	return m.ListByStatusFunc(ctx, collectionID, status)
}

func (m *membershipRepoMock) IsActive(ctx context.Context, collectionID uuid.UUID, userID int64) (bool, error) {
	return m.IsActiveFunc(ctx, collectionID, userID)
}

type eventLogMock struct {
	CreateFunc           func(ctx context.Context, e *domain.CollectionRoleEvent) (*domain.CollectionRoleEvent, error)
	ListByCollectionFunc func(ctx context.Context, collectionID uuid.UUID, limit int) ([]domain.CollectionRoleEvent, error)

	mu    sync.Mutex
	calls []*domain.CollectionRoleEvent
}

func (m *eventLogMock) Create(ctx context.Context, e *domain.CollectionRoleEvent) (*domain.CollectionRoleEvent, error) {
	m.mu.Lock()
	m.calls = append(m.calls, e)
	m.mu.Unlock()
	if m.CreateFunc == nil {
		created := *e
		created.ID = uuid.New()
		return &created, nil
	}
	return m.CreateFunc(ctx, e)
}

func (m *eventLogMock) CreateCalls() []*domain.CollectionRoleEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *eventLogMock) ListByCollection(ctx context.Context, collectionID uuid.UUID, limit int) ([]domain.CollectionRoleEvent, error) {
	return m.ListByCollectionFunc(ctx, collectionID, limit)
}

type userDirectoryMock struct {
	ByIDFunc       func(ctx context.Context, id int64) (*domain.UserRef, error)
	ByUsernameFunc func(ctx context.Context, username string) (*domain.UserRef, error)
}

func (m *userDirectoryMock) ByID(ctx context.Context, id int64) (*domain.UserRef, error) {
	return m.ByIDFunc(ctx, id)
}

func (m *userDirectoryMock) ByUsername(ctx context.Context, username string) (*domain.UserRef, error) {
	return m.ByUsernameFunc(ctx, username)
}

type versionIndexMock struct {
	TouchFunc func(ctx context.Context, collectionID uuid.UUID) error

	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *versionIndexMock) Touch(ctx context.Context, collectionID uuid.UUID) error {
	m.mu.Lock()
	m.calls = append(m.calls, collectionID)
	m.mu.Unlock()
	if m.TouchFunc == nil {
		return nil
	}
	return m.TouchFunc(ctx, collectionID)
}

func (m *versionIndexMock) TouchCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type metricsRecorderMock struct {
	mu          sync.Mutex
	transitions []string
}

func (m *metricsRecorderMock) RecordRoleTransition(eventType string) {
	m.mu.Lock()
	m.transitions = append(m.transitions, eventType)
	m.mu.Unlock()
}

func (m *metricsRecorderMock) RecordCacheVersionBump() {}

func (m *metricsRecorderMock) Transitions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitions
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
