package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollector_RegistersAndServes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCollectionMutation("create")
	c.RecordItemMutation("move")
	c.RecordRoleTransition("maintainer_approved")
	c.RecordCacheVersionBump()
	c.RecordNotificationSent()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	for _, metric := range []string{
		"collections_collection_mutations_total",
		"collections_item_mutations_total",
		"collections_role_transitions_total",
		"collections_cache_version_bumps_total",
		"collections_notifications_sent_total",
	} {
		if !strings.Contains(string(body), metric) {
			t.Errorf("response should contain %s", metric)
		}
	}
}
