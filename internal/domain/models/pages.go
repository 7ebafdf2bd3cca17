package models

import "time"

// Page names.
const (
	PageDashboard = "dashboard"
	PageSignals   = "signals"
	PageWhales    = "whales"
	PageAnalytics = "analytics"
)

// DashboardPage is the command center snapshot.
type DashboardPage struct {
	Signals       []Signal           `json:"signals"`
	ActiveSignals []Signal           `json:"active_signals"`
	Whales        []WhaleTransaction `json:"whale_transactions"`
	Trending      []TrendingToken    `json:"trending_tokens"`
	Status        SystemStatus       `json:"system_status"`
	FearGreed     FearGreedIndex     `json:"fear_greed"`
	GeneratedAt   time.Time          `json:"generated_at"`
}

type SignalsPage struct {
	Signals     []Signal          `json:"signals"`
	Total       int               `json:"total"`
	Search      string            `json:"search"`
	Type        string            `json:"type"`
	Confidence  []ConfidencePoint `json:"confidence"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type WhalesPage struct {
	Transactions []WhaleTransaction `json:"transactions"`
	Total        int                `json:"total"`
	Chain        string             `json:"chain"`
	Volume       []WhaleVolumePoint `json:"volume"`
	TopWallets   []WhaleWallet      `json:"top_wallets"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

type AnalyticsPage struct {
	Accuracy    []AccuracyPoint      `json:"accuracy"`
	Modules     []ModuleContribution `json:"modules"`
	Equity      []EquityPoint        `json:"equity"`
	Stats       AnalyticsStats       `json:"stats"`
	BestSignals []Signal             `json:"best_signals"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// AnalyticsStats are derived over settled signals and the equity series.
// Percentages are rounded to one decimal.
type AnalyticsStats struct {
	TotalSignals int     `json:"total_signals"`
	Closed       int     `json:"closed"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"win_rate"`
	AvgPnL       float64 `json:"avg_pnl"`
	TotalReturn  float64 `json:"total_return"`
	BestSignal   *Signal `json:"best_signal,omitempty"`
}
