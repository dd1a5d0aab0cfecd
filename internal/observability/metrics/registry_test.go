package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/calebmoores/content-dashboard/internal/observability/metrics"
)

// gather returns the metric family with the given name from the default
// registry, or nil when it has no samples yet.
func gather(t *testing.T, name string) *dto.MetricFamily {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

// counterValue returns the sample whose label pairs match want exactly,
// or -1 when absent.
func counterValue(f *dto.MetricFamily, want map[string]string) float64 {
	if f == nil {
		return -1
	}
	for _, m := range f.GetMetric() {
		matched := 0
		for _, l := range m.GetLabel() {
			if want[l.GetName()] == l.GetValue() {
				matched++
			}
		}
		if matched == len(want) && len(m.GetLabel()) == len(want) {
			return m.GetCounter().GetValue()
		}
	}
	return -1
}

func TestRecordHTTPRequest(t *testing.T) {
	labels := map[string]string{"method": "GET", "path": "/articles/{id}", "status": "200"}

	before := counterValue(gather(t, "http_requests_total"), labels)
	if before < 0 {
		before = 0
	}

	metrics.RecordHTTPRequest("GET", "/articles/{id}", "200", 25*time.Millisecond)

	after := counterValue(gather(t, "http_requests_total"), labels)
	if after != before+1 {
		t.Errorf("http_requests_total = %v, want %v", after, before+1)
	}
}

func TestRecordTransition(t *testing.T) {
	labels := map[string]string{"target": "published", "outcome": "applied"}

	before := counterValue(gather(t, "article_transitions_total"), labels)
	if before < 0 {
		before = 0
	}

	metrics.RecordTransition("published", "applied")
	metrics.RecordTransition("published", "applied")

	after := counterValue(gather(t, "article_transitions_total"), labels)
	if after != before+2 {
		t.Errorf("article_transitions_total = %v, want %v", after, before+2)
	}
}

func TestUpdateArticleCounts(t *testing.T) {
	metrics.UpdateArticleCounts(map[string]int{"draft": 3, "published": 1})

	f := gather(t, "articles_by_status")
	if f == nil {
		t.Fatal("articles_by_status not registered")
	}

	var draft float64 = -1
	for _, m := range f.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "status" && l.GetValue() == "draft" {
				draft = m.GetGauge().GetValue()
			}
		}
	}
	if draft != 3 {
		t.Errorf("articles_by_status{status=draft} = %v, want 3", draft)
	}
}
