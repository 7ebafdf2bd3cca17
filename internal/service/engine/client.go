// Package engine reads the GodSignal engine API. Every accessor is total: it
// issues a single bounded GET and on any failure (transport, timeout, status,
// parse) hands back the caller's fallback untouched.
package engine

import (
	"context"
	"encoding/json"
	"time"

	"GodSignal/internal/domain/models"
	"GodSignal/internal/domain/repository"
	"GodSignal/pkg/config"
	xhttp "GodSignal/pkg/http"
	"GodSignal/pkg/logger"
)

type resource struct {
	name string
	path string
	wrap []string
}

var (
	resSignals      = resource{"signals", "/api/signals", []string{"signals"}}
	resWhales       = resource{"whale_transactions", "/api/whales", []string{"whale_transactions"}}
	resTrending     = resource{"trending_tokens", "/api/trending", []string{"trending_by_signals"}}
	resStatus       = resource{"system_status", "/api/status", nil}
	resAccuracy     = resource{"accuracy", "/api/analytics/accuracy", []string{"accuracy", "data"}}
	resModules      = resource{"module_contribution", "/api/analytics/modules", []string{"modules", "data"}}
	resEquity       = resource{"equity", "/api/analytics/equity", []string{"equity", "data"}}
	resConfidence   = resource{"confidence", "/api/analytics/confidence", []string{"confidence", "data"}}
	resWhaleVolume  = resource{"whale_volume", "/api/whales/volume", []string{"volume", "data"}}
	resWhaleWallets = resource{"top_whale_wallets", "/api/whales/top", []string{"wallets", "top", "data"}}
)

// Client is the engine data source.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *xhttp.Client
	log     *logger.Logger
	metrics repository.Metrics
	now     func() time.Time
}

var _ repository.EngineSource = (*Client)(nil)

// Option configures Client.
type Option func(*Client)

// WithClock overrides the time source used for status defaults.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient builds a client for cfg.Engine. The base URL is taken from cfg once;
// nothing here reads the environment.
func NewClient(cfg *config.Config, log *logger.Logger, m repository.Metrics, opts ...Option) *Client {
	c := &Client{
		baseURL: cfg.Engine.BaseURL,
		timeout: cfg.Engine.Timeout,
		log:     log,
		metrics: m,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
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

func (c *Client) Signals(ctx context.Context, fallback []models.Signal) []models.Signal {
	return fetchList(ctx, c, resSignals, fallback, decodeSignal)
}

func (c *Client) WhaleTransactions(ctx context.Context, fallback []models.WhaleTransaction) []models.WhaleTransaction {
	return fetchList(ctx, c, resWhales, fallback, decodeWhale)
}

func (c *Client) TrendingTokens(ctx context.Context, fallback []models.TrendingToken) []models.TrendingToken {
	return fetchList(ctx, c, resTrending, fallback, decodeTrending)
}

func (c *Client) AccuracyOverTime(ctx context.Context, fallback []models.AccuracyPoint) []models.AccuracyPoint {
	return fetchList(ctx, c, resAccuracy, fallback, decodeAccuracy)
}

func (c *Client) ModuleContribution(ctx context.Context, fallback []models.ModuleContribution) []models.ModuleContribution {
	return fetchList(ctx, c, resModules, fallback, decodeModule)
}

func (c *Client) EquitySimulation(ctx context.Context, fallback []models.EquityPoint) []models.EquityPoint {
	return fetchList(ctx, c, resEquity, fallback, decodeEquity)
}

func (c *Client) ConfidenceOverTime(ctx context.Context, fallback []models.ConfidencePoint) []models.ConfidencePoint {
	return fetchList(ctx, c, resConfidence, fallback, decodeConfidence)
}

func (c *Client) WhaleVolume(ctx context.Context, fallback []models.WhaleVolumePoint) []models.WhaleVolumePoint {
	return fetchList(ctx, c, resWhaleVolume, fallback, decodeWhaleVolume)
}

// TopWhaleWallets numbers unranked wallets by their position in the response.
func (c *Client) TopWhaleWallets(ctx context.Context, fallback []models.WhaleWallet) []models.WhaleWallet {
	wallets := fetchList(ctx, c, resWhaleWallets, fallback, decodeWhaleWallet)
	if sameSlice(wallets, fallback) {
		return wallets
	}
	for i := range wallets {
		if wallets[i].Rank <= 0 {
			wallets[i].Rank = i + 1
		}
	}
	return wallets
}

// SystemStatus maps the engine status object. A body without a status field
// counts as a parse failure.
func (c *Client) SystemStatus(ctx context.Context, fallback models.SystemStatus) models.SystemStatus {
	start := time.Now()
	body, err := c.fetch(ctx, resStatus)
	if err != nil {
		c.fallback(resStatus, start, err)
		return fallback
	}
	st, err := statusFromBody(body, c.now())
	if err != nil {
		c.fallback(resStatus, start, xhttp.NewParseError(c.url(resStatus), err))
		return fallback
	}
	c.live(resStatus, start, 1)
	return st
}

func (c *Client) url(res resource) string { return c.baseURL + res.path }

// fetch performs the single bounded GET for res.
func (c *Client) fetch(ctx context.Context, res resource) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body json.RawMessage
	if err := c.http.GetJSON(ctx, c.url(res), &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) fallback(res resource, start time.Time, err error) {
	elapsed := time.Since(start)
	kind := string(xhttp.KindOf(err))
	c.log.Warn("engine fetch failed, serving fallback",
		logger.String("resource", res.name),
		logger.String("endpoint", c.url(res)),
		logger.String("kind", kind),
		logger.Int("status", xhttp.StatusOf(err)),
		logger.Duration("duration_ms", elapsed),
		logger.Error(err),
	)
	c.metrics.RecordFallback(res.name, kind)
	c.metrics.RecordFetch(res.name, "fallback", elapsed.Seconds())
}

func (c *Client) live(res resource, start time.Time, n int) {
	elapsed := time.Since(start)
	c.log.Debug("engine fetch ok",
		logger.String("resource", res.name),
		logger.Int("records", n),
		logger.Duration("duration_ms", elapsed),
	)
	c.metrics.RecordFetch(res.name, "live", elapsed.Seconds())
	c.metrics.RecordRecords(res.name, n)
}
