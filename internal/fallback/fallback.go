// Package fallback holds the static dataset served whenever the engine or the
// sentiment API cannot be reached. Every resource is non-empty and the records
// agree with each other (the trending tokens and whale flows reference the same
// tokens as the signals), so a fully degraded dashboard still reads coherently.
package fallback

import (
	"time"

	"GodSignal/internal/domain/models"
)

func at(now time.Time, days int, hours float64) time.Time {
	return now.AddDate(0, 0, -days).Add(-time.Duration(hours * float64(time.Hour)))
}

func pnl(v float64) *float64 { return &v }

func modules(sentiment, whale, technical, onChain, social, smartMoney float64) map[string]float64 {
	return map[string]float64{
		"sentiment":          sentiment,
		"whale_activity":     whale,
		"technical_analysis": technical,
		"on_chain_metrics":   onChain,
		"social_buzz":        social,
		"smart_money":        smartMoney,
	}
}

func signal(id, symbol, name, chain, alert string, score float64, created time.Time,
	price, change float64, mcap, vol string, mods map[string]float64, outcome string, ret *float64) models.Signal {
	return models.Signal{
		ID:              id,
		Token:           symbol,
		Symbol:          symbol,
		Name:            name,
		Chain:           chain,
		Type:            models.DirectionFromAlert(alert),
		AlertType:       alert,
		Score:           score,
		ConfidenceLabel: models.ConfidenceLabel(score),
		CreatedAt:       created,
		Price:           price,
		PriceChange24h:  change,
		MarketCap:       mcap,
		Volume24h:       vol,
		Modules:         mods,
		Outcome:         outcome,
		PnL:             ret,
	}
}

// Signals returns 15 example signals timestamped relative to now.
func Signals(now time.Time) []models.Signal {
	return []models.Signal{
		signal("sig-001", "PEPE", "Pepe", models.ChainETH, models.AlertWhale, 94, at(now, 0, 1),
			0.00001847, 12.5, "$7.8B", "$1.2B", modules(92, 96, 88, 95, 97, 94), models.OutcomePending, nil),
		signal("sig-002", "RNDR", "Render", models.ChainETH, models.AlertBullish, 91, at(now, 0, 3),
			11.42, 8.3, "$5.9B", "$890M", modules(88, 93, 92, 89, 85, 96), models.OutcomePending, nil),
		signal("sig-003", "JUP", "Jupiter", models.ChainSOL, models.AlertMomentum, 89, at(now, 0, 5),
			1.87, 15.2, "$2.5B", "$420M", modules(91, 87, 85, 92, 90, 88), models.OutcomePending, nil),
		signal("sig-004", "BONK", "Bonk", models.ChainSOL, models.AlertBullish, 87, at(now, 0, 8),
			0.0000382, 22.1, "$2.8B", "$650M", modules(95, 82, 78, 88, 96, 84), models.OutcomeWin, pnl(22.1)),
		signal("sig-005", "ARB", "Arbitrum", models.ChainARB, models.AlertBearish, 85, at(now, 1, 2),
			1.92, -5.4, "$7.1B", "$380M", modules(72, 88, 90, 85, 68, 92), models.OutcomeWin, pnl(5.4)),
		signal("sig-006", "WLD", "Worldcoin", models.ChainETH, models.AlertBullish, 83, at(now, 1, 6),
			8.75, 18.9, "$3.2B", "$290M", modules(85, 80, 82, 78, 92, 81), models.OutcomeWin, pnl(18.9)),
		signal("sig-007", "INJ", "Injective", models.ChainETH, models.AlertBullish, 81, at(now, 2, 1),
			42.30, 6.7, "$4.1B", "$210M", modules(78, 85, 84, 80, 72, 86), models.OutcomeWin, pnl(6.7)),
		signal("sig-008", "FLOKI", "Floki", models.ChainBNB, models.AlertBearish, 78, at(now, 2, 4),
			0.000312, -8.2, "$3.0B", "$450M", modules(65, 82, 85, 76, 70, 80), models.OutcomeWin, pnl(8.2)),
		signal("sig-009", "ONDO", "Ondo", models.ChainETH, models.AlertNewListing, 76, at(now, 3, 3),
			4.15, -2.1, "$5.8B", "$180M", modules(82, 73, 70, 78, 75, 77), models.OutcomeLoss, pnl(-2.1)),
		signal("sig-010", "SEI", "Sei", models.ChainETH, models.AlertBullish, 74, at(now, 3, 8),
			0.89, 4.5, "$3.4B", "$160M", modules(76, 70, 75, 72, 78, 73), models.OutcomeWin, pnl(4.5)),
		signal("sig-011", "AAVE", "Aave", models.ChainETH, models.AlertBullish, 72, at(now, 4, 2),
			358.40, 3.2, "$5.3B", "$220M", modules(74, 78, 71, 69, 65, 75), models.OutcomeWin, pnl(3.2)),
		signal("sig-012", "WIF", "Dogwifhat", models.ChainSOL, models.AlertMomentum, 88, at(now, 4, 5),
			3.42, 28.5, "$3.4B", "$780M", modules(93, 86, 80, 88, 95, 85), models.OutcomeWin, pnl(28.5)),
		signal("sig-013", "STX", "Stacks", models.ChainETH, models.AlertBearish, 70, at(now, 5, 3),
			2.85, -3.8, "$4.1B", "$140M", modules(62, 74, 76, 70, 60, 72), models.OutcomeLoss, pnl(-3.8)),
		signal("sig-014", "LINK", "Chainlink", models.ChainETH, models.AlertBullish, 86, at(now, 5, 7),
			24.80, 9.1, "$15.2B", "$520M", modules(84, 90, 87, 83, 80, 89), models.OutcomeWin, pnl(9.1)),
		signal("sig-015", "CAKE", "PancakeSwap", models.ChainBNB, models.AlertNeutral, 68, at(now, 6, 2),
			4.52, -1.3, "$1.3B", "$95M", modules(70, 65, 68, 72, 62, 70), models.OutcomeLoss, pnl(-1.3)),
	}
}

func whale(id, wallet, label, typ, symbol, name, chain string, amount, value, score float64, created time.Time, tx string) models.WhaleTransaction {
	return models.WhaleTransaction{
		ID:          id,
		Wallet:      wallet,
		WalletLabel: label,
		Type:        typ,
		Token:       symbol,
		Symbol:      symbol,
		Name:        name,
		Chain:       chain,
		Amount:      amount,
		ValueUSD:    value,
		Score:       score,
		CreatedAt:   created,
		TxHash:      tx,
	}
}

// WhaleTransactions returns 15 example whale events, newest first.
func WhaleTransactions(now time.Time) []models.WhaleTransaction {
	return []models.WhaleTransaction{
		whale("wh-001", "0x7a16...3f9e", "Galaxy Digital", models.WhaleBuy, "ETH", "Ethereum", models.ChainETH, 12500, 48750000, 88, at(now, 0, 0.5), "0xabc...def"),
		whale("wh-002", "0x3d8c...7a2b", "Jump Trading", models.WhaleBuy, "SOL", "Solana", models.ChainSOL, 250000, 37500000, 84, at(now, 0, 1), "0x123...456"),
		whale("wh-003", "0x9f2e...1c4d", "Wintermute", models.WhaleSell, "BTC", "Bitcoin", models.ChainETH, 340, 33320000, 79, at(now, 0, 1.5), "0xdef...789"),
		whale("wh-004", "0x5b7a...9e3f", "Alameda Remnant", models.WhaleTransfer, "USDC", "USDC", models.ChainETH, 25000000, 25000000, 52, at(now, 0, 2), "0x456...abc"),
		whale("wh-005", "0x1c3d...8f2a", "DWF Labs", models.WhaleBuy, "PEPE", "Pepe", models.ChainETH, 1200000000000, 22200000, 91, at(now, 0, 3), "0x789...ghi"),
		whale("wh-006", "0x8e4f...2d7c", "Paradigm", models.WhaleBuy, "RNDR", "Render", models.ChainETH, 1500000, 17130000, 86, at(now, 0, 4), "0xaaa...bbb"),
		whale("wh-007", "0x4a9b...6e1f", "Three Arrows (New)", models.WhaleSell, "BNB", "BNB", models.ChainBNB, 42000, 15540000, 71, at(now, 0, 5), "0xccc...ddd"),
		whale("wh-008", "0x2f6e...4b8a", "Cumberland", models.WhaleBuy, "JUP", "Jupiter", models.ChainSOL, 8000000, 14960000, 82, at(now, 0, 6), "0xeee...fff"),
		whale("wh-009", "0x7c1d...9a3e", "", models.WhaleBuy, "LINK", "Chainlink", models.ChainETH, 500000, 12400000, 77, at(now, 0, 8), "0x111...222"),
		whale("wh-010", "0x6b3f...2e8d", "Binance Hot", models.WhaleTransfer, "USDT", "Tether", models.ChainETH, 50000000, 50000000, 48, at(now, 0, 10), "0x333...444"),
		whale("wh-011", "0xa2e8...5f1c", "a16z", models.WhaleBuy, "WLD", "Worldcoin", models.ChainETH, 1200000, 10500000, 80, at(now, 0, 12), "0x555...666"),
		whale("wh-012", "0xd4c7...3a9b", "", models.WhaleSell, "WIF", "Dogwifhat", models.ChainSOL, 2500000, 8550000, 66, at(now, 0, 14), "0x777...888"),
		whale("wh-013", "0xf1a3...7c2e", "Polychain", models.WhaleBuy, "INJ", "Injective", models.ChainETH, 180000, 7614000, 74, at(now, 1, 2), "0x999...aaa"),
		whale("wh-014", "0x3e9d...8b4f", "", models.WhaleBuy, "AAVE", "Aave", models.ChainETH, 18000, 6451200, 69, at(now, 1, 5), "0xbbb...ccc"),
		whale("wh-015", "0x8d2a...1f6e", "Sequoia Scout", models.WhaleBuy, "SEI", "Sei", models.ChainETH, 5000000, 4450000, 63, at(now, 1, 8), "0xddd...eee"),
	}
}

func trending(symbol, name, chain string, price, change float64, volume string, avg, peak float64, count int, whaleScore float64) models.TrendingToken {
	return models.TrendingToken{
		Symbol:        symbol,
		Name:          name,
		Chain:         chain,
		Price:         price,
		Change24h:     change,
		Volume:        volume,
		AvgScore:      avg,
		PeakScore:     peak,
		SignalCount:   count,
		WhaleScore:    whaleScore,
		WhaleInterest: models.WhaleTier(whaleScore),
	}
}

// TrendingTokens returns 8 example tokens ranked by signal activity.
func TrendingTokens() []models.TrendingToken {
	return []models.TrendingToken{
		trending("PEPE", "Pepe", models.ChainETH, 0.00001847, 12.5, "$1.2B", 88.4, 94, 8, 96),
		trending("WIF", "Dogwifhat", models.ChainSOL, 3.42, 28.5, "$780M", 84.2, 88, 5, 86),
		trending("JUP", "Jupiter", models.ChainSOL, 1.87, 15.2, "$420M", 81.5, 89, 4, 47),
		trending("RNDR", "Render", models.ChainETH, 11.42, 8.3, "$890M", 86.0, 91, 6, 93),
		trending("BONK", "Bonk", models.ChainSOL, 0.0000382, 22.1, "$650M", 79.7, 87, 3, 42),
		trending("WLD", "Worldcoin", models.ChainETH, 8.75, 18.9, "$290M", 77.3, 83, 4, 38),
		trending("INJ", "Injective", models.ChainETH, 42.30, 6.7, "$210M", 74.0, 81, 3, 24),
		trending("LINK", "Chainlink", models.ChainETH, 24.80, 9.1, "$520M", 82.6, 86, 5, 90),
	}
}

// OfflineStatus is reported when the engine status endpoint is unusable.
func OfflineStatus(now time.Time) models.SystemStatus {
	return models.SystemStatus{
		Status:       models.StatusOffline,
		Uptime:       "0h",
		LastScan:     now,
		TotalModules: 6,
	}
}

// NeutralFearGreed is reported when the sentiment API is unusable.
func NeutralFearGreed() models.FearGreedIndex {
	return models.FearGreedIndex{Value: 50, Label: "Neutral", PreviousValue: 50}
}
