package collection

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

var (
	_ collectionRepo  = &collectionRepoMock{}
	_ membershipRepo  = &membershipRepoMock{}
	_ followRepo      = &followRepoMock{}
	_ itemProbe       = &itemProbeMock{}
	_ versionIndex    = &versionIndexMock{}
	_ metricsRecorder = &metricsRecorderMock{}
	_ txManager       = &txManagerMock{}
)

type collectionRepoMock struct {
	CreateFunc           func(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, title string, description *string) (*domain.Collection, error)
	SetRecommendedFunc   func(ctx context.Context, id uuid.UUID, recommended bool) (*domain.Collection, error)
	SoftDeleteFunc       func(ctx context.Context, id uuid.UUID) error
	CountByCreatorFunc   func(ctx context.Context, userID int64) (int, error)
	ListPlazaFunc        func(ctx context.Context, query domain.ListQuery) ([]domain.CollectionSummary, error)
	ListManageableByFunc func(ctx context.Context, userID int64, search string, limit int) ([]domain.CollectionSummary, error)
	ListByCreatorFunc    func(ctx context.Context, userID int64, search string, limit int) ([]domain.CollectionSummary, error)

	mu    sync.Mutex
	calls struct {
		Create         []*domain.Collection
		GetByID        []uuid.UUID
		Update         []uuid.UUID
		SetRecommended []uuid.UUID
		SoftDelete     []uuid.UUID
		CountByCreator []int64
		ListPlaza      []domain.ListQuery
	}
}

func (m *collectionRepoMock) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *collectionRepoMock) CreateCalls() []*domain.Collection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *collectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *collectionRepoMock) Update(ctx context.Context, id uuid.UUID, title string, description *string) (*domain.Collection, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, id)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, title, description)
}

func (m *collectionRepoMock) UpdateCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *collectionRepoMock) SetRecommended(ctx context.Context, id uuid.UUID, recommended bool) (*domain.Collection, error) {
	m.mu.Lock()
	m.calls.SetRecommended = append(m.calls.SetRecommended, id)
	m.mu.Unlock()
	return m.SetRecommendedFunc(ctx, id, recommended)
}

func (m *collectionRepoMock) SetRecommendedCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetRecommended
}

func (m *collectionRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.calls.SoftDelete = append(m.calls.SoftDelete, id)
	m.mu.Unlock()
	return m.SoftDeleteFunc(ctx, id)
}

func (m *collectionRepoMock) SoftDeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SoftDelete
}

func (m *collectionRepoMock) CountByCreator(ctx context.Context, userID int64) (int, error) {
	m.mu.Lock()
	m.calls.CountByCreator = append(m.calls.CountByCreator, userID)
	m.mu.Unlock()
	return m.CountByCreatorFunc(ctx, userID)
}

func (m *collectionRepoMock) ListPlaza(ctx context.Context, query domain.ListQuery) ([]domain.CollectionSummary, error) {
	m.mu.Lock()
	m.calls.ListPlaza = append(m.calls.ListPlaza, query)
	m.mu.Unlock()
	return m.ListPlazaFunc(ctx, query)
}

func (m *collectionRepoMock) ListPlazaCalls() []domain.ListQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ListPlaza
}

func (m *collectionRepoMock) ListManageableBy(ctx context.Context, userID int64, search string, limit int) ([]domain.CollectionSummary, error) {
	return m.ListManageableByFunc(ctx, userID, search, limit)
}

func (m *collectionRepoMock) ListByCreator(ctx context.Context, userID int64, search string, limit int) ([]domain.CollectionSummary, error) {
	return m.ListByCreatorFunc(ctx, userID, search, limit)
}

type membershipRepoMock struct {
	UpsertFunc func(ctx context.Context, m *domain.CollectionMembership) (*domain.CollectionMembership, error)

	mu    sync.Mutex
	calls struct {
		Upsert []*domain.CollectionMembership
	}
}

func (m *membershipRepoMock) Upsert(ctx context.Context, membership *domain.CollectionMembership) (*domain.CollectionMembership, error) {
	m.mu.Lock()
	m.calls.Upsert = append(m.calls.Upsert, membership)
	m.mu.Unlock()
	return m.UpsertFunc(ctx, membership)
}

func (m *membershipRepoMock) UpsertCalls() []*domain.CollectionMembership {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Upsert
}

type followRepoMock struct {
	CreateFunc func(ctx context.Context, collectionID uuid.UUID, userID int64) (*domain.CollectionFollow, error)
	DeleteFunc func(ctx context.Context, collectionID uuid.UUID, userID int64) error

	mu    sync.Mutex
	calls struct {
		Create []int64
		Delete []int64
	}
}

func (m *followRepoMock) Create(ctx context.Context, collectionID uuid.UUID, userID int64) (*domain.CollectionFollow, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, userID)
	m.mu.Unlock()
	return m.CreateFunc(ctx, collectionID, userID)
}

func (m *followRepoMock) CreateCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *followRepoMock) Delete(ctx context.Context, collectionID uuid.UUID, userID int64) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, userID)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, collectionID, userID)
}

func (m *followRepoMock) DeleteCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

type itemProbeMock struct {
	ExistsTopicFunc func(ctx context.Context, collectionID uuid.UUID, topicID int64) (bool, error)
	ExistsPostFunc  func(ctx context.Context, collectionID uuid.UUID, postID int64) (bool, error)
}

func (m *itemProbeMock) ExistsTopic(ctx context.Context, collectionID uuid.UUID, topicID int64) (bool, error) {
	return m.ExistsTopicFunc(ctx, collectionID, topicID)
}

func (m *itemProbeMock) ExistsPost(ctx context.Context, collectionID uuid.UUID, postID int64) (bool, error) {
	return m.ExistsPostFunc(ctx, collectionID, postID)
}

type versionIndexMock struct {
	TouchFunc func(ctx context.Context, collectionID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Touch []uuid.UUID
	}
}

func (m *versionIndexMock) Touch(ctx context.Context, collectionID uuid.UUID) error {
	m.mu.Lock()
	m.calls.Touch = append(m.calls.Touch, collectionID)
	m.mu.Unlock()
	if m.TouchFunc == nil {
		return nil
	}
	return m.TouchFunc(ctx, collectionID)
}

func (m *versionIndexMock) TouchCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Touch
}

type metricsRecorderMock struct {
	mu        sync.Mutex
	mutations []string
	bumps     int
}

func (m *metricsRecorderMock) RecordCollectionMutation(operation string) {
	m.mu.Lock()
	m.mutations = append(m.mutations, operation)
	m.mu.Unlock()
}

func (m *metricsRecorderMock) RecordCacheVersionBump() {
	m.mu.Lock()
	m.bumps++
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
