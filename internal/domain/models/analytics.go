package models

// AccuracyPoint is one bucket of the accuracy-over-time series.
type AccuracyPoint struct {
	Date     string  `json:"date"`
	Accuracy float64 `json:"accuracy"`
	Signals  int     `json:"signals"`
}

// ModuleContribution is one slice of the module contribution breakdown.
type ModuleContribution struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// EquityPoint compares simulated equity against a benchmark.
type EquityPoint struct {
	Date      string  `json:"date"`
	Equity    float64 `json:"equity"`
	Benchmark float64 `json:"benchmark"`
}

type ConfidencePoint struct {
	Date          string  `json:"date"`
	AvgConfidence float64 `json:"avg_confidence"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
}

// WhaleVolumePoint is daily whale volume per chain, in millions of USD.
type WhaleVolumePoint struct {
	Date string  `json:"date"`
	ETH  float64 `json:"eth"`
	SOL  float64 `json:"sol"`
	BNB  float64 `json:"bnb"`
}

type WhaleWallet struct {
	Rank        int     `json:"rank"`
	Wallet      string  `json:"wallet"`
	Label       string  `json:"label,omitempty"`
	TotalVolume string  `json:"total_volume"`
	TxCount     int     `json:"tx_count"`
	ProfitRate  float64 `json:"profit_rate"`
}
