package item

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

var (
	_ itemRepo        = &itemRepoMock{}
	_ collectionRepo  = &collectionRepoMock{}
	_ membershipRepo  = &membershipRepoMock{}
	_ contentResolver = &contentResolverMock{}
	_ notifier        = &notifierMock{}
	_ versionIndex    = &versionIndexMock{}
	_ metricsRecorder = &metricsRecorderMock{}
	_ txManager       = &txManagerMock{}
)

type shiftCall struct {
	Lo, Hi, Delta int
}

type positionCall struct {
	ItemID   uuid.UUID
	Position int
}

type itemRepoMock struct {
	CreateFunc           func(ctx context.Context, item *domain.CollectionItem) (*domain.CollectionItem, error)
	GetByIDFunc          func(ctx context.Context, collectionID, itemID uuid.UUID) (*domain.CollectionItem, error)
	ListByCollectionFunc func(ctx context.Context, collectionID uuid.UUID) ([]domain.CollectionItem, error)
	CountFunc            func(ctx context.Context, collectionID uuid.UUID) (int, error)
	MaxPositionFunc      func(ctx context.Context, collectionID uuid.UUID) (int, error)
	ExistsTopicFunc      func(ctx context.Context, collectionID uuid.UUID, topicID int64) (bool, error)
	ExistsPostFunc       func(ctx context.Context, collectionID uuid.UUID, postID int64) (bool, error)
	DeleteFunc           func(ctx context.Context, collectionID, itemID uuid.UUID) error
	UpdatePositionFunc   func(ctx context.Context, itemID uuid.UUID, position int) error
	ShiftRangeFunc       func(ctx context.Context, collectionID uuid.UUID, lo, hi, delta int) error

	mu    sync.Mutex
	calls struct {
		Create         []*domain.CollectionItem
		Delete         []uuid.UUID
		UpdatePosition []positionCall
		ShiftRange     []shiftCall
	}
}

func (m *itemRepoMock) Create(ctx context.Context, item *domain.CollectionItem) (*domain.CollectionItem, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, item)
	m.mu.Unlock()
	return m.CreateFunc(ctx, item)
}

func (m *itemRepoMock) CreateCalls() []*domain.CollectionItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *itemRepoMock) GetByID(ctx context.Context, collectionID, itemID uuid.UUID) (*domain.CollectionItem, error) {
	return m.GetByIDFunc(ctx, collectionID, itemID)
}

func (m *itemRepoMock) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.CollectionItem, error) {
	return m.ListByCollectionFunc(ctx, collectionID)
}

func (m *itemRepoMock) Count(ctx context.Context, collectionID uuid.UUID) (int, error) {
	return m.CountFunc(ctx, collectionID)
}

func (m *itemRepoMock) MaxPosition(ctx context.Context, collectionID uuid.UUID) (int, error) {
	return m.MaxPositionFunc(ctx, collectionID)
}

func (m *itemRepoMock) ExistsTopic(ctx context.Context, collectionID uuid.UUID, topicID int64) (bool, error) {
	return m.ExistsTopicFunc(ctx, collectionID, topicID)
}

func (m *itemRepoMock) ExistsPost(ctx context.Context, collectionID uuid.UUID, postID int64) (bool, error) {
	return m.ExistsPostFunc(ctx, collectionID, postID)
}

func (m *itemRepoMock) Delete(ctx context.Context, collectionID, itemID uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, itemID)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, collectionID, itemID)
}

func (m *itemRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

func (m *itemRepoMock) UpdatePosition(ctx context.Context, itemID uuid.UUID, position int) error {
	m.mu.Lock()
	m.calls.UpdatePosition = append(m.calls.UpdatePosition, positionCall{ItemID: itemID, Position: position})
	m.mu.Unlock()
	return m.UpdatePositionFunc(ctx, itemID, position)
}

func (m *itemRepoMock) UpdatePositionCalls() []positionCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdatePosition
}

func (m *itemRepoMock) ShiftRange(ctx context.Context, collectionID uuid.UUID, lo, hi, delta int) error {
	m.mu.Lock()
	m.calls.ShiftRange = append(m.calls.ShiftRange, shiftCall{Lo: lo, Hi: hi, Delta: delta})
	m.mu.Unlock()
	return m.ShiftRangeFunc(ctx, collectionID, lo, hi, delta)
}

func (m *itemRepoMock) ShiftRangeCalls() []shiftCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ShiftRange
}

type collectionRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
}

func (m *collectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	return m.GetByIDFunc(ctx, id)
}

type membershipRepoMock struct {
	IsActiveFunc func(ctx context.Context, collectionID uuid.UUID, userID int64) (bool, error)
}

func (m *membershipRepoMock) IsActive(ctx context.Context, collectionID uuid.UUID, userID int64) (bool, error) {
	return m.IsActiveFunc(ctx, collectionID, userID)
}

type contentResolverMock struct {
	TopicFunc func(ctx context.Context, id int64) (*domain.TopicRef, error)
	PostFunc  func(ctx context.Context, id int64) (*domain.PostRef, error)
}

func (m *contentResolverMock) Topic(ctx context.Context, id int64) (*domain.TopicRef, error) {
	return m.TopicFunc(ctx, id)
}

func (m *contentResolverMock) Post(ctx context.Context, id int64) (*domain.PostRef, error) {
	return m.PostFunc(ctx, id)
}

type notifierMock struct {
	ContentCollectedFunc func(ctx context.Context, n domain.CollectedNotification) error

	mu    sync.Mutex
	calls []domain.CollectedNotification
}

func (m *notifierMock) ContentCollected(ctx context.Context, n domain.CollectedNotification) error {
	m.mu.Lock()
	m.calls = append(m.calls, n)
	m.mu.Unlock()
	if m.ContentCollectedFunc == nil {
		return nil
	}
	return m.ContentCollectedFunc(ctx, n)
}

func (m *notifierMock) Calls() []domain.CollectedNotification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
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
	mu            sync.Mutex
	mutations     []string
	notifications int
}

func (m *metricsRecorderMock) RecordItemMutation(operation string) {
	m.mu.Lock()
	m.mutations = append(m.mutations, operation)
	m.mu.Unlock()
}

func (m *metricsRecorderMock) RecordCacheVersionBump() {}

func (m *metricsRecorderMock) RecordNotificationSent() {
	m.mu.Lock()
	m.notifications++
	m.mu.Unlock()
}

func (m *metricsRecorderMock) Mutations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mutations
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
