package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCollector_ExposesCounters(t *testing.T) {
	c := NewCollector()
	c.RecordDiscoveryQuery()
	c.RecordDiscoveryQuery()
	c.RecordReviewCreated()
	c.RecordHTTPStatus(200)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("metrics endpoint returned %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	out := string(body)

	if !strings.Contains(out, "courts_discovery_queries_total 2") {
		t.Errorf("expected discovery counter at 2, output:\n%s", out)
	}
	if !strings.Contains(out, "courts_reviews_created_total 1") {
		t.Errorf("expected review counter at 1, output:\n%s", out)
	}
	if !strings.Contains(out, `courts_http_status_total{status_code="200"} 1`) {
		t.Errorf("expected status counter, output:\n%s", out)
	}
}

func TestCollector_NilIsNoOp(t *testing.T) {
	var c *Collector
	// Must not panic.
	c.RecordDiscoveryQuery()
	c.RecordReviewCreated()
	c.RecordReviewDeleted()
	c.RecordFavoriteToggle()
	c.RecordHTTPStatus(500)
}
