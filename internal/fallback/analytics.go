package fallback

import "GodSignal/internal/domain/models"

func AccuracyOverTime() []models.AccuracyPoint {
	return []models.AccuracyPoint{
		{Date: "Jan 15", Accuracy: 72, Signals: 12},
		{Date: "Jan 22", Accuracy: 78, Signals: 15},
		{Date: "Jan 29", Accuracy: 74, Signals: 18},
		{Date: "Feb 5", Accuracy: 82, Signals: 14},
		{Date: "Feb 12", Accuracy: 85, Signals: 20},
		{Date: "Feb 19", Accuracy: 79, Signals: 16},
		{Date: "Feb 26", Accuracy: 88, Signals: 22},
		{Date: "Mar 5", Accuracy: 84, Signals: 19},
		{Date: "Mar 12", Accuracy: 91, Signals: 24},
		{Date: "Mar 19", Accuracy: 87, Signals: 21},
		{Date: "Mar 26", Accuracy: 86, Signals: 18},
		{Date: "Apr 2", Accuracy: 89, Signals: 25},
	}
}

// ModuleContribution sums to 100.
func ModuleContribution() []models.ModuleContribution {
	return []models.ModuleContribution{
		{Name: "Whale Activity", Value: 28, Color: "#D86DCB"},
		{Name: "Smart Money", Value: 22, Color: "#C23ABA"},
		{Name: "Technical Analysis", Value: 18, Color: "#7B2FBE"},
		{Name: "On-Chain Metrics", Value: 15, Color: "#4A1B8A"},
		{Name: "Sentiment", Value: 10, Color: "#E891DF"},
		{Name: "Social Buzz", Value: 7, Color: "#9B3F91"},
	}
}

// EquitySimulation starts both curves at 10000.
func EquitySimulation() []models.EquityPoint {
	return []models.EquityPoint{
		{Date: "Week 1", Equity: 10000, Benchmark: 10000},
		{Date: "Week 2", Equity: 10450, Benchmark: 10120},
		{Date: "Week 3", Equity: 11200, Benchmark: 10050},
		{Date: "Week 4", Equity: 10800, Benchmark: 9980},
		{Date: "Week 5", Equity: 12100, Benchmark: 10200},
		{Date: "Week 6", Equity: 13500, Benchmark: 10350},
		{Date: "Week 7", Equity: 13200, Benchmark: 10100},
		{Date: "Week 8", Equity: 14800, Benchmark: 10500},
		{Date: "Week 9", Equity: 16200, Benchmark: 10450},
		{Date: "Week 10", Equity: 15900, Benchmark: 10600},
		{Date: "Week 11", Equity: 17500, Benchmark: 10800},
		{Date: "Week 12", Equity: 19200, Benchmark: 10750},
	}
}

func ConfidenceOverTime() []models.ConfidencePoint {
	return []models.ConfidencePoint{
		{Date: "Jan 15", AvgConfidence: 72, High: 88, Low: 58},
		{Date: "Jan 22", AvgConfidence: 75, High: 91, Low: 62},
		{Date: "Jan 29", AvgConfidence: 78, High: 92, Low: 65},
		{Date: "Feb 5", AvgConfidence: 76, High: 89, Low: 60},
		{Date: "Feb 12", AvgConfidence: 80, High: 94, Low: 68},
		{Date: "Feb 19", AvgConfidence: 82, High: 93, Low: 70},
		{Date: "Feb 26", AvgConfidence: 79, High: 91, Low: 66},
		{Date: "Mar 5", AvgConfidence: 84, High: 95, Low: 72},
		{Date: "Mar 12", AvgConfidence: 86, High: 96, Low: 74},
		{Date: "Mar 19", AvgConfidence: 83, High: 94, Low: 71},
	}
}

func WhaleVolume() []models.WhaleVolumePoint {
	return []models.WhaleVolumePoint{
		{Date: "Mon", ETH: 120, SOL: 45, BNB: 28},
		{Date: "Tue", ETH: 95, SOL: 62, BNB: 35},
		{Date: "Wed", ETH: 150, SOL: 38, BNB: 42},
		{Date: "Thu", ETH: 180, SOL: 72, BNB: 25},
		{Date: "Fri", ETH: 130, SOL: 55, BNB: 38},
		{Date: "Sat", ETH: 88, SOL: 80, BNB: 30},
		{Date: "Sun", ETH: 110, SOL: 48, BNB: 22},
	}
}

func TopWhaleWallets() []models.WhaleWallet {
	return []models.WhaleWallet{
		{Rank: 1, Wallet: "0x7a16...3f9e", Label: "Galaxy Digital", TotalVolume: "$487M", TxCount: 142, ProfitRate: 78},
		{Rank: 2, Wallet: "0x3d8c...7a2b", Label: "Jump Trading", TotalVolume: "$375M", TxCount: 98, ProfitRate: 82},
		{Rank: 3, Wallet: "0x9f2e...1c4d", Label: "Wintermute", TotalVolume: "$333M", TxCount: 215, ProfitRate: 71},
		{Rank: 4, Wallet: "0x1c3d...8f2a", Label: "DWF Labs", TotalVolume: "$222M", TxCount: 67, ProfitRate: 85},
		{Rank: 5, Wallet: "0x8e4f...2d7c", Label: "Paradigm", TotalVolume: "$171M", TxCount: 43, ProfitRate: 89},
		{Rank: 6, Wallet: "0xa2e8...5f1c", Label: "a16z", TotalVolume: "$105M", TxCount: 31, ProfitRate: 91},
		{Rank: 7, Wallet: "0x6b3f...2e8d", Label: "Binance Hot", TotalVolume: "$500M", TxCount: 520, ProfitRate: 65},
		{Rank: 8, Wallet: "0x2f6e...4b8a", Label: "Cumberland", TotalVolume: "$149M", TxCount: 78, ProfitRate: 76},
	}
}
