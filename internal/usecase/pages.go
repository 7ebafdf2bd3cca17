package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"GodSignal/internal/domain/models"
	domrepo "GodSignal/internal/domain/repository"
	domsvc "GodSignal/internal/domain/service"
	"GodSignal/internal/fallback"
	"GodSignal/pkg/logger"
)

const bestSignalsLimit = 8

// PageUseCase acquires every resource a page needs concurrently. Each resource
// gets its own goroutine and its own result slot; the page is ready when the
// slowest single fetch settles.
type PageUseCase struct {
	engine    domrepo.EngineSource
	sentiment domrepo.SentimentSource
	metrics   domrepo.Metrics
	log       *logger.Logger
	now       func() time.Time
}

var _ domsvc.Pages = (*PageUseCase)(nil)

func NewPageUseCase(engine domrepo.EngineSource, sentiment domrepo.SentimentSource, metrics domrepo.Metrics, log *logger.Logger) *PageUseCase {
	if metrics == nil {
		metrics = domrepo.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PageUseCase{
		engine:    engine,
		sentiment: sentiment,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

func (uc *PageUseCase) Dashboard(ctx context.Context) models.DashboardPage {
	start := time.Now()
	now := uc.now()

	var (
		signals  []models.Signal
		whales   []models.WhaleTransaction
		trending []models.TrendingToken
		status   models.SystemStatus
		fg       models.FearGreedIndex
	)
	join(
		func() { signals = uc.engine.Signals(ctx, fallback.Signals(now)) },
		func() { whales = uc.engine.WhaleTransactions(ctx, fallback.WhaleTransactions(now)) },
		func() { trending = uc.engine.TrendingTokens(ctx, fallback.TrendingTokens()) },
		func() { status = uc.engine.SystemStatus(ctx, fallback.OfflineStatus(now)) },
		func() { fg = uc.sentiment.FearGreed(ctx, fallback.NeutralFearGreed()) },
	)
	uc.observe(models.PageDashboard, start)

	return models.DashboardPage{
		Signals:       SortByScore(signals),
		ActiveSignals: ActiveSignals(signals),
		Whales:        whales,
		Trending:      trending,
		Status:        status,
		FearGreed:     fg,
		GeneratedAt:   now,
	}
}

func (uc *PageUseCase) Signals(ctx context.Context, req models.SignalsRequest) models.SignalsPage {
	start := time.Now()
	now := uc.now()

	var (
		signals    []models.Signal
		confidence []models.ConfidencePoint
	)
	join(
		func() { signals = uc.engine.Signals(ctx, fallback.Signals(now)) },
		func() { confidence = uc.engine.ConfidenceOverTime(ctx, fallback.ConfidenceOverTime()) },
	)
	uc.observe(models.PageSignals, start)

	filtered := FilterSignals(signals, req.Search, req.Type)
	return models.SignalsPage{
		Signals:     filtered,
		Total:       len(filtered),
		Search:      req.Search,
		Type:        typeOrAll(req.Type),
		Confidence:  confidence,
		GeneratedAt: now,
	}
}

func (uc *PageUseCase) Whales(ctx context.Context, req models.WhalesRequest) models.WhalesPage {
	start := time.Now()
	now := uc.now()

	var (
		txs     []models.WhaleTransaction
		volume  []models.WhaleVolumePoint
		wallets []models.WhaleWallet
	)
	join(
		func() { txs = uc.engine.WhaleTransactions(ctx, fallback.WhaleTransactions(now)) },
		func() { volume = uc.engine.WhaleVolume(ctx, fallback.WhaleVolume()) },
		func() { wallets = uc.engine.TopWhaleWallets(ctx, fallback.TopWhaleWallets()) },
	)
	uc.observe(models.PageWhales, start)

	filtered := FilterWhales(txs, req.Chain)
	return models.WhalesPage{
		Transactions: filtered,
		Total:        len(filtered),
		Chain:        typeOrAll(req.Chain),
		Volume:       volume,
		TopWallets:   wallets,
		GeneratedAt:  now,
	}
}

func (uc *PageUseCase) Analytics(ctx context.Context) models.AnalyticsPage {
	start := time.Now()
	now := uc.now()

	var (
		accuracy []models.AccuracyPoint
		mods     []models.ModuleContribution
		equity   []models.EquityPoint
		signals  []models.Signal
	)
	join(
		func() { accuracy = uc.engine.AccuracyOverTime(ctx, fallback.AccuracyOverTime()) },
		func() { mods = uc.engine.ModuleContribution(ctx, fallback.ModuleContribution()) },
		func() { equity = uc.engine.EquitySimulation(ctx, fallback.EquitySimulation()) },
		func() { signals = uc.engine.Signals(ctx, fallback.Signals(now)) },
	)
	uc.observe(models.PageAnalytics, start)

	return models.AnalyticsPage{
		Accuracy:    accuracy,
		Modules:     mods,
		Equity:      equity,
		Stats:       ComputeStats(signals, equity),
		BestSignals: BestSignals(signals, bestSignalsLimit),
		GeneratedAt: now,
	}
}

// ExportSignals runs the signals page acquisition and writes the filtered rows as CSV.
func (uc *PageUseCase) ExportSignals(ctx context.Context, req models.SignalsRequest, w io.Writer) (int, error) {
	page := uc.Signals(ctx, req)
	if err := WriteSignalsCSV(w, page.Signals); err != nil {
		return 0, err
	}
	return len(page.Signals), nil
}

// Page dispatches by page name; unknown names get the dashboard.
func (uc *PageUseCase) Page(ctx context.Context, name string) interface{} {
	switch name {
	case models.PageSignals:
		return uc.Signals(ctx, models.SignalsRequest{Type: allFilter})
	case models.PageWhales:
		return uc.Whales(ctx, models.WhalesRequest{Chain: allFilter})
	case models.PageAnalytics:
		return uc.Analytics(ctx)
	}
	return uc.Dashboard(ctx)
}

func (uc *PageUseCase) observe(page string, start time.Time) {
	elapsed := time.Since(start)
	uc.metrics.RecordPage(page, elapsed.Seconds())
	uc.log.Debug("page acquired", logger.String("page", page), logger.Duration("duration_ms", elapsed))
}

// join runs every task in its own goroutine and waits for all of them.
func join(tasks ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(task func()) {
			defer wg.Done()
			task()
		}(task)
	}
	wg.Wait()
}
