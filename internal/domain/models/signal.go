package models

import (
	"strings"
	"time"
)

// Chains the engine reports on. Records without a chain use ChainMulti.
const (
	ChainETH   = "ETH"
	ChainSOL   = "SOL"
	ChainBNB   = "BNB"
	ChainARB   = "ARB"
	ChainBASE  = "BASE"
	ChainMulti = "multi"
)

// Directional types.
const (
	TypeBuy   = "BUY"
	TypeSell  = "SELL"
	TypeWatch = "WATCH"
)

// Alert types produced by the engine.
const (
	AlertBullish    = "bullish"
	AlertBearish    = "bearish"
	AlertMomentum   = "momentum"
	AlertWhale      = "whale_alert"
	AlertNewListing = "new_listing"
	AlertNeutral    = "neutral"
)

// Outcomes of a settled or open signal.
const (
	OutcomeWin     = "WIN"
	OutcomeLoss    = "LOSS"
	OutcomePending = "PENDING"
)

// Signal is a directional recommendation for one token.
type Signal struct {
	ID              string             `json:"id"`
	Token           string             `json:"token"`
	Symbol          string             `json:"symbol"`
	Name            string             `json:"name,omitempty"`
	Chain           string             `json:"chain"`
	Type            string             `json:"type"`
	AlertType       string             `json:"alert_type"`
	Score           float64            `json:"score"`
	ConfidenceLabel string             `json:"confidence_label"`
	CreatedAt       time.Time          `json:"created_at"`
	Price           float64            `json:"price"`
	PriceChange24h  float64            `json:"price_change_24h"`
	MarketCap       string             `json:"market_cap,omitempty"`
	Volume24h       string             `json:"volume_24h,omitempty"`
	Modules         map[string]float64 `json:"modules,omitempty"`
	Sources         []string           `json:"sources,omitempty"`
	Outcome         string             `json:"outcome,omitempty"`
	PnL             *float64           `json:"pnl,omitempty"`
}

// Settled reports whether the outcome is known and final.
func (s *Signal) Settled() bool {
	return s.Outcome != "" && s.Outcome != OutcomePending
}

// ModuleScore returns the first module score present under any of keys.
func (s *Signal) ModuleScore(keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := s.Modules[k]; ok {
			return v, true
		}
	}
	return 0, false
}

// PnLValue is the realized return, 0 while unsettled.
func (s *Signal) PnLValue() float64 {
	if s.PnL == nil {
		return 0
	}
	return *s.PnL
}

// WhaleTransaction is a large transfer or accumulation event.
type WhaleTransaction struct {
	ID          string        `json:"id"`
	Wallet      string        `json:"wallet"`
	WalletLabel string        `json:"wallet_label,omitempty"`
	Type        string        `json:"type"`
	SignalType  string        `json:"signal_type,omitempty"`
	Token       string        `json:"token"`
	Symbol      string        `json:"symbol"`
	Name        string        `json:"name,omitempty"`
	Chain       string        `json:"chain"`
	Amount      float64       `json:"amount"`
	ValueUSD    float64       `json:"value_usd"`
	Score       float64       `json:"score"`
	CreatedAt   time.Time     `json:"created_at"`
	TxHash      string        `json:"tx_hash,omitempty"`
	Details     *WhaleDetails `json:"details,omitempty"`
}

// WhaleDetails carries optional supporting evidence for a whale event.
type WhaleDetails struct {
	Change24h    *float64 `json:"change_24h,omitempty"`
	VolMcapRatio *float64 `json:"vol_mcap_ratio,omitempty"`
	Reasons      []string `json:"reasons,omitempty"`
}

// Whale transaction types.
const (
	WhaleBuy          = "BUY"
	WhaleSell         = "SELL"
	WhaleTransfer     = "TRANSFER"
	WhaleAccumulation = "ACCUMULATION"
	WhaleDistribution = "DISTRIBUTION"
)

// IsAccumulation reports whether the event adds to a position.
func (w *WhaleTransaction) IsAccumulation() bool {
	return w.Type == WhaleBuy || w.Type == WhaleAccumulation ||
		strings.Contains(strings.ToLower(w.SignalType), "accumulation")
}

// TrendingToken aggregates recent signal activity for one token.
type TrendingToken struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Chain         string  `json:"chain"`
	Price         float64 `json:"price"`
	Change24h     float64 `json:"change_24h"`
	Volume        string  `json:"volume,omitempty"`
	AvgScore      float64 `json:"avg_score"`
	PeakScore     float64 `json:"peak_score"`
	SignalCount   int     `json:"signal_count"`
	WhaleScore    float64 `json:"whale_score"`
	WhaleInterest string  `json:"whale_interest"`
}

// SystemStatus is the engine's operational snapshot.
type SystemStatus struct {
	Status                string    `json:"status"`
	Uptime                string    `json:"uptime"`
	LastScan              time.Time `json:"last_scan"`
	ActiveSignals         int       `json:"active_signals"`
	TotalSignalsGenerated int       `json:"total_signals_generated"`
	AccuracyRate          float64   `json:"accuracy_rate"`
	ModulesOnline         int       `json:"modules_online"`
	TotalModules          int       `json:"total_modules"`
}

const (
	StatusOperational = "OPERATIONAL"
	StatusOffline     = "OFFLINE"
)

// FearGreedIndex is the market sentiment indicator.
type FearGreedIndex struct {
	Value         int    `json:"value"`
	Label         string `json:"label"`
	PreviousValue int    `json:"previous_value"`
	Change        int    `json:"change"`
}
