package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/v1/stats", 200, 12*time.Millisecond)
	m.Observe("GET", "/api/v1/stats", 200, 8*time.Millisecond)
	m.Observe("POST", "/api/v1/rapports", 403, time.Millisecond)

	got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/stats", "200"))
	if got != 2 {
		t.Fatalf("expected 2 GET stats requests, got %v", got)
	}
	got = testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/v1/rapports", "403"))
	if got != 1 {
		t.Fatalf("expected 1 denied POST, got %v", got)
	}
}

func TestObserveOnNilReceiverIsSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/", 200, time.Millisecond)
}

func TestNormalizeLabel(t *testing.T) {
	if normalizeLabel("  ") != "unknown" {
		t.Fatalf("blank labels should normalize to unknown")
	}
	if normalizeLabel(" GET ") != "GET" {
		t.Fatalf("labels should be trimmed")
	}
}
