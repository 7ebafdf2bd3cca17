package fallback

import (
	"testing"
	"time"

	"GodSignal/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetIsNonEmpty(t *testing.T) {
	now := time.Now()
	assert.Len(t, Signals(now), 15)
	assert.Len(t, WhaleTransactions(now), 15)
	assert.Len(t, TrendingTokens(), 8)
	assert.Len(t, AccuracyOverTime(), 12)
	assert.Len(t, ModuleContribution(), 6)
	assert.Len(t, EquitySimulation(), 12)
	assert.Len(t, ConfidenceOverTime(), 10)
	assert.Len(t, WhaleVolume(), 7)
	assert.Len(t, TopWhaleWallets(), 8)
}

func TestSignalsAreSelfConsistent(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ids := map[string]bool{}
	for _, s := range Signals(now) {
		assert.False(t, ids[s.ID], "duplicate id %s", s.ID)
		ids[s.ID] = true

		assert.Equal(t, models.DirectionFromAlert(s.AlertType), s.Type, s.ID)
		assert.Equal(t, models.ConfidenceLabel(s.Score), s.ConfidenceLabel, s.ID)
		assert.True(t, s.CreatedAt.Before(now), s.ID)
		assert.Len(t, s.Modules, 6, s.ID)
		if s.Settled() {
			require.NotNil(t, s.PnL, s.ID)
			assert.Equal(t, s.Outcome == models.OutcomeWin, *s.PnL > 0, s.ID)
		} else {
			assert.Nil(t, s.PnL, s.ID)
		}
	}
}

func TestTrendingTierMatchesWhaleScore(t *testing.T) {
	for _, tok := range TrendingTokens() {
		assert.Equal(t, models.WhaleTier(tok.WhaleScore), tok.WhaleInterest, tok.Symbol)
		assert.LessOrEqual(t, tok.AvgScore, tok.PeakScore, tok.Symbol)
	}
}

func TestModuleContributionSumsToHundred(t *testing.T) {
	var sum float64
	for _, m := range ModuleContribution() {
		sum += m.Value
	}
	assert.Equal(t, 100.0, sum)
}

func TestEquityStartsAtBaseline(t *testing.T) {
	eq := EquitySimulation()
	assert.Equal(t, 10000.0, eq[0].Equity)
	assert.Equal(t, 10000.0, eq[0].Benchmark)
}

func TestStaticFallbacks(t *testing.T) {
	now := time.Now()
	st := OfflineStatus(now)
	assert.Equal(t, models.StatusOffline, st.Status)
	assert.Equal(t, "0h", st.Uptime)
	assert.Equal(t, 6, st.TotalModules)
	assert.Zero(t, st.ModulesOnline)
	assert.True(t, st.LastScan.Equal(now))

	fg := NeutralFearGreed()
	assert.Equal(t, models.FearGreedIndex{Value: 50, Label: "Neutral", PreviousValue: 50}, fg)
}
