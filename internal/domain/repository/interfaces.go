package repository

import (
	"context"

	"GodSignal/internal/domain/models"
)

// EngineSource reads the primary backend. Every method is total: on any
// failure it returns the supplied fallback unchanged.
type EngineSource interface {
	Signals(ctx context.Context, fallback []models.Signal) []models.Signal
	WhaleTransactions(ctx context.Context, fallback []models.WhaleTransaction) []models.WhaleTransaction
	TrendingTokens(ctx context.Context, fallback []models.TrendingToken) []models.TrendingToken
	SystemStatus(ctx context.Context, fallback models.SystemStatus) models.SystemStatus
	AccuracyOverTime(ctx context.Context, fallback []models.AccuracyPoint) []models.AccuracyPoint
	ModuleContribution(ctx context.Context, fallback []models.ModuleContribution) []models.ModuleContribution
	EquitySimulation(ctx context.Context, fallback []models.EquityPoint) []models.EquityPoint
	ConfidenceOverTime(ctx context.Context, fallback []models.ConfidencePoint) []models.ConfidencePoint
	WhaleVolume(ctx context.Context, fallback []models.WhaleVolumePoint) []models.WhaleVolumePoint
	TopWhaleWallets(ctx context.Context, fallback []models.WhaleWallet) []models.WhaleWallet
}

// SentimentSource reads the external market sentiment index.
type SentimentSource interface {
	FearGreed(ctx context.Context, fallback models.FearGreedIndex) models.FearGreedIndex
}

type Metrics interface {
	RecordFetch(resource, outcome string, seconds float64)
	RecordFallback(resource, kind string)
	RecordRecords(resource string, n int)
	RecordPage(page string, seconds float64)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) RecordFetch(string, string, float64) {}
func (NopMetrics) RecordFallback(string, string)       {}
func (NopMetrics) RecordRecords(string, int)           {}
func (NopMetrics) RecordPage(string, float64)          {}
