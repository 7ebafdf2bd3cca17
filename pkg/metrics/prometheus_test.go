package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.RecordFetch("signals", "live", 0.12)
	r.RecordFetch("signals", "fallback", 5)
	r.RecordFallback("signals", "timeout")
	r.RecordFallback("signals", "timeout")
	r.RecordRecords("signals", 15)

	assert.Equal(t, float64(1), testutil.ToFloat64(r.fetches.WithLabelValues("signals", "live")))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.fallbacks.WithLabelValues("signals", "timeout")))
	assert.Equal(t, float64(15), testutil.ToFloat64(r.records.WithLabelValues("signals")))
}

func TestRecorderPerRegistry(t *testing.T) {
	// separate registries must not collide
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
