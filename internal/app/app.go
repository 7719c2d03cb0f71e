// Package app wires configuration, storage, the cache version index and the
// domain services into a ready-to-embed unit. The embedding forum system
// supplies the external collaborators (user directory, content resolver,
// notifier) and whatever transport it exposes the services through.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres"
	collectionrepo "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres/collection"
	followrepo "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres/follow"
	itemrepo "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres/item"
	membershiprepo "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres/membership"
	roleeventrepo "github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres/roleevent"
	"github.com/InternationalRiversiders/discourse-collections/internal/adapter/rediscache"
	"github.com/InternationalRiversiders/discourse-collections/internal/config"
	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/internal/metrics"
	"github.com/InternationalRiversiders/discourse-collections/internal/service/collection"
	"github.com/InternationalRiversiders/discourse-collections/internal/service/governance"
	"github.com/InternationalRiversiders/discourse-collections/internal/service/item"
)

// UserDirectory resolves forum users. Implemented by the embedding system.
type UserDirectory interface {
	ByID(ctx context.Context, id int64) (*domain.UserRef, error)
	ByUsername(ctx context.Context, username string) (*domain.UserRef, error)
}

// ContentResolver resolves forum topics and posts. Implemented by the
// embedding system.
type ContentResolver interface {
	Topic(ctx context.Context, id int64) (*domain.TopicRef, error)
	Post(ctx context.Context, id int64) (*domain.PostRef, error)
}

// Notifier delivers content-collected notifications to authors. Implemented
// by the embedding system.
type Notifier interface {
	ContentCollected(ctx context.Context, n domain.CollectedNotification) error
}

// Collaborators are the external integration points the embedding system
// must provide.
type Collaborators struct {
	Users   UserDirectory
	Content ContentResolver
	Notify  Notifier
}

// App is the assembled collections engine.
type App struct {
	Collections *collection.Service
	Items       *item.Service
	Governance  *governance.Service
	Versions    *rediscache.Index
	Keys        *rediscache.Keys
	Registry    *prometheus.Registry

	closers []func()
}

// New connects to PostgreSQL and Redis and builds the full service graph.
// Close must be called when the app shuts down.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, ext Collaborators) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	redisClient, err := rediscache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	versions := rediscache.NewIndex(redisClient, cfg.Redis.VersionTTL)
	txManager := postgres.NewTxManager(pool)

	collections := collectionrepo.New(pool)
	items := itemrepo.New(pool)
	memberships := membershiprepo.New(pool)
	roleEvents := roleeventrepo.New(pool)
	follows := followrepo.New(pool)

	a := &App{
		Collections: collection.NewService(
			logger, collections, memberships, follows, items, versions, collector, txManager,
			collection.Limits{
				MinTrustLevelToCreate: cfg.Collections.MinTrustLevelToCreate,
				MaxPerUser:            cfg.Collections.MaxPerUser,
			},
		),
		Items: item.NewService(
			logger, items, collections, memberships, ext.Content, ext.Notify, versions, collector, txManager,
		),
		Governance: governance.NewService(
			logger, collections, memberships, roleEvents, ext.Users, versions, collector, txManager,
		),
		Versions: versions,
		Keys:     rediscache.NewKeys(versions),
		Registry: registry,
		closers: []func(){
			pool.Close,
			func() { _ = redisClient.Close() },
		},
	}

	logger.InfoContext(ctx, "collections engine ready",
		slog.String("version", BuildVersion()),
	)

	return a, nil
}

// MetricsHandler returns the Prometheus scrape handler for the app's registry.
func (a *App) MetricsHandler() http.Handler {
	return metrics.Handler(a.Registry)
}

// Close releases the database and Redis connections.
func (a *App) Close() {
	for _, fn := range a.closers {
		fn()
	}
}
