package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	mu      sync.Mutex
	topic   string
	digests [][]AggregatedLogEntry
}

func (p *capturePublisher) PublishMessage(_ context.Context, topic string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topic = topic
	p.digests = append(p.digests, payload.([]AggregatedLogEntry))
	return nil
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.DebugLevel)

	l.Warn("fallback used",
		String("resource", "signals"),
		Int("status", 503),
		Duration("duration_ms", 1500*time.Millisecond),
		Error(errors.New("boom")),
	)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "warn", got["level"])
	assert.Equal(t, "fallback used", got["message"])
	assert.Equal(t, "signals", got["resource"])
	assert.Equal(t, float64(503), got["status"])
	assert.Equal(t, float64(1500), got["duration_ms"])
	assert.Equal(t, "boom", got["error"])
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.WarnLevel)
	l.Info("hidden")
	l.Debug("hidden")
	assert.Zero(t, buf.Len())
}

func TestCollectorAggregatesAndPublishesOnClose(t *testing.T) {
	pub := &capturePublisher{}
	l := Nop()
	l.AddCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 100, Topic: "logs", Publisher: pub})

	for i := 0; i < 3; i++ {
		l.Warn("fallback used", String("resource", "signals"))
	}
	l.Error("fallback used", String("resource", "whales"))
	l.Info("not collected")

	assert.Equal(t, 2, l.collector.Pending())
	l.RemoveCollector()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.digests, 1)
	assert.Equal(t, "logs", pub.topic)

	counts := map[string]int{}
	for _, e := range pub.digests[0] {
		counts[e.Level+":"+e.Fields["resource"].(string)] = e.Count
	}
	assert.Equal(t, map[string]int{"warn:signals": 3, "error:whales": 1}, counts)
}

func TestCollectorIgnoresDurationAndErrorWhenDeduplicating(t *testing.T) {
	pub := &capturePublisher{}
	l := Nop()
	l.AddCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 100, Topic: "logs", Publisher: pub})

	for i := 1; i <= 3; i++ {
		l.Warn("engine fetch failed, serving fallback",
			String("resource", "signals"),
			String("kind", "timeout"),
			Duration("duration_ms", time.Duration(i)*time.Millisecond),
			Error(fmt.Errorf("attempt %d: deadline exceeded", i)),
		)
	}
	assert.Equal(t, 1, l.collector.Pending())

	l.Warn("engine fetch failed, serving fallback", String("resource", "whales"), Duration("duration_ms", time.Millisecond))
	assert.Equal(t, 2, l.collector.Pending())
	l.RemoveCollector()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.digests, 1)
	for _, e := range pub.digests[0] {
		if e.Fields["resource"] == "signals" {
			assert.Equal(t, 3, e.Count)
		}
	}
}

func TestCollectorFlushesAtThreshold(t *testing.T) {
	pub := &capturePublisher{}
	c := NewLogCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 2, Topic: "logs", Publisher: pub})
	c.AddLog("warn", "a", nil, "x.go:1")
	c.AddLog("warn", "b", nil, "x.go:2")
	assert.Equal(t, 0, c.Pending())
	c.Close()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.digests, 1)
	assert.Len(t, pub.digests[0], 2)
}
