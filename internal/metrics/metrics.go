// Package metrics provides Prometheus metric collection and exposure.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records domain-level counters for the collections engine.
type Collector struct {
	collectionMutations *prometheus.CounterVec
	itemMutations       *prometheus.CounterVec
	roleTransitions     *prometheus.CounterVec
	cacheVersionBumps   prometheus.Counter
	notificationsSent   prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		collectionMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "collections_collection_mutations_total",
			Help: "Collection create/update/delete operations by kind.",
		}, []string{"operation"}),
		itemMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "collections_item_mutations_total",
			Help: "Item add/remove/move operations by kind.",
		}, []string{"operation"}),
		roleTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "collections_role_transitions_total",
			Help: "Governance transitions by role event type.",
		}, []string{"event_type"}),
		cacheVersionBumps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "collections_cache_version_bumps_total",
			Help: "Cache version index bumps triggered by mutations.",
		}),
		notificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "collections_notifications_sent_total",
			Help: "Content-collected notifications dispatched to authors.",
		}),
	}

	reg.MustRegister(
		c.collectionMutations,
		c.itemMutations,
		c.roleTransitions,
		c.cacheVersionBumps,
		c.notificationsSent,
	)

	return c
}

// RecordCollectionMutation counts a collection-level write.
func (c *Collector) RecordCollectionMutation(operation string) {
	c.collectionMutations.WithLabelValues(operation).Inc()
}

// RecordItemMutation counts an item-level write.
func (c *Collector) RecordItemMutation(operation string) {
	c.itemMutations.WithLabelValues(operation).Inc()
}

// RecordRoleTransition counts a governance transition.
func (c *Collector) RecordRoleTransition(eventType string) {
	c.roleTransitions.WithLabelValues(eventType).Inc()
}

// RecordCacheVersionBump counts a version index touch.
func (c *Collector) RecordCacheVersionBump() {
	c.cacheVersionBumps.Inc()
}

// RecordNotificationSent counts a dispatched author notification.
func (c *Collector) RecordNotificationSent() {
	c.notificationsSent.Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
