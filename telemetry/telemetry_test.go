package telemetry_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/maretto/framebuf/telemetry"
)

// TestNop does nothing, loudly.
func TestNop(t *testing.T) {
	obs := telemetry.Nop()
	obs.OnIngest(true, "")
	obs.OnIngest(false, "TF_OLD_DATA")
	obs.OnLookup(true)
	obs.OnWait(false)
}

// TestPrometheus_Counters verifies label routing and counts.
func TestPrometheus_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := telemetry.NewPrometheus(reg)

	obs.OnIngest(true, "")
	obs.OnIngest(true, "")
	obs.OnIngest(false, "TF_REPEATED_DATA")
	obs.OnLookup(true)
	obs.OnLookup(false)
	obs.OnWait(true)

	expected := `
# HELP framebuf_ingest_samples_total Transform samples offered to the buffer, by outcome and rejection reason.
# TYPE framebuf_ingest_samples_total counter
framebuf_ingest_samples_total{outcome="accepted",reason=""} 2
framebuf_ingest_samples_total{outcome="rejected",reason="TF_REPEATED_DATA"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "framebuf_ingest_samples_total"); err != nil {
		t.Errorf("ingest counter mismatch: %v", err)
	}

	expected = `
# HELP framebuf_lookups_total Transform queries answered by the buffer, by outcome.
# TYPE framebuf_lookups_total counter
framebuf_lookups_total{outcome="error"} 1
framebuf_lookups_total{outcome="ok"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "framebuf_lookups_total"); err != nil {
		t.Errorf("lookup counter mismatch: %v", err)
	}
}

// TestPrometheus_RegistersOnce: double registration on one registry
// must panic via promauto, guarding against accidental reuse.
func TestPrometheus_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = telemetry.NewPrometheus(reg)

	defer func() {
		if recover() == nil {
			t.Error("second NewPrometheus on the same registry did not panic")
		}
	}()
	_ = telemetry.NewPrometheus(reg)
}
