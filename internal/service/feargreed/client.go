// Package feargreed reads the alternative.me Fear & Greed index. It is
// independent of the engine base URL but follows the same single-shot,
// fallback-on-anything discipline.
package feargreed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"GodSignal/internal/domain/models"
	"GodSignal/internal/domain/repository"
	"GodSignal/pkg/config"
	xhttp "GodSignal/pkg/http"
	"GodSignal/pkg/logger"
	"GodSignal/pkg/util"
)

const (
	resourceName = "fear_greed"
	neutralValue = 50
)

type Client struct {
	url     string
	timeout time.Duration
	http    *xhttp.Client
	log     *logger.Logger
	metrics repository.Metrics
}

var _ repository.SentimentSource = (*Client)(nil)

func NewClient(cfg *config.Config, log *logger.Logger, m repository.Metrics) *Client {
	c := &Client{
		url:     cfg.Sentiment.URL,
		timeout: cfg.Sentiment.Timeout,
		log:     log,
		metrics: m,
	}
	if c.timeout <= 0 {
		c.timeout = 5 * time.Second
	}
	c.http = xhttp.NewClient(xhttp.WithTimeout(c.timeout))
	if c.log == nil {
		c.log = logger.Nop()
	}
	if c.metrics == nil {
		c.metrics = repository.NopMetrics{}
	}
	return c
}

// FearGreed returns the current and previous index values. Missing entries
// default to 50; the label comes from the API or, failing that, the value band.
func (c *Client) FearGreed(ctx context.Context, fallback models.FearGreedIndex) models.FearGreedIndex {
	start := time.Now()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body json.RawMessage
	if err := c.http.GetJSON(reqCtx, c.url, &body); err != nil {
		c.fail(start, err)
		return fallback
	}

	idx, err := parseIndex(body)
	if err != nil {
		c.fail(start, xhttp.NewParseError(c.url, err))
		return fallback
	}

	elapsed := time.Since(start)
	c.metrics.RecordFetch(resourceName, "live", elapsed.Seconds())
	c.log.Debug("fear & greed fetched",
		logger.Int("value", idx.Value),
		logger.Duration("duration_ms", elapsed),
	)
	return idx
}

func parseIndex(body json.RawMessage) (models.FearGreedIndex, error) {
	r, ok := util.ParseRecord(body)
	if !ok {
		return models.FearGreedIndex{}, fmt.Errorf("expected object, got %.16s", body)
	}

	entries := r.Objects("data")
	value, prev := neutralValue, neutralValue
	label := ""
	if len(entries) > 0 {
		value = entries[0].IntOr(neutralValue, "value")
		label = entries[0].Str("", "value_classification")
	}
	if len(entries) > 1 {
		prev = entries[1].IntOr(neutralValue, "value")
	}
	if label == "" {
		label = models.FearGreedLabel(value)
	}

	return models.FearGreedIndex{
		Value:         value,
		Label:         label,
		PreviousValue: prev,
		Change:        value - prev,
	}, nil
}

func (c *Client) fail(start time.Time, err error) {
	elapsed := time.Since(start)
	kind := string(xhttp.KindOf(err))
	c.log.Warn("fear & greed fetch failed, serving fallback",
		logger.String("resource", resourceName),
		logger.String("endpoint", c.url),
		logger.String("kind", kind),
		logger.Int("status", xhttp.StatusOf(err)),
		logger.Duration("duration_ms", elapsed),
		logger.Error(err),
	)
	c.metrics.RecordFallback(resourceName, kind)
	c.metrics.RecordFetch(resourceName, "fallback", elapsed.Seconds())
}
