package engine

import (
	"encoding/json"
	"math"
	"strings"

	"GodSignal/internal/domain/models"
	"GodSignal/pkg/util"
)

// Every element is decoded strictly into its canonical type first. When the
// strict pass rejects it (unknown or mistyped fields) the element is read field
// by field from ordered alias lists. Both paths end in the same normalization.
// Non-object elements are skipped.
func decodeElement[T any](raw json.RawMessage, lenient func(util.Record) T, normalize func(*T)) (T, bool) {
	var zero T
	rec, ok := util.ParseRecord(raw)
	if !ok {
		return zero, false
	}
	v, err := decodeStrict[T](raw)
	if err != nil {
		v = lenient(rec)
	}
	if normalize != nil {
		normalize(&v)
	}
	return v, true
}

func decodeSignal(raw json.RawMessage) (models.Signal, bool) {
	return decodeElement(raw, signalFromRecord, normalizeSignal)
}

func decodeWhale(raw json.RawMessage) (models.WhaleTransaction, bool) {
	return decodeElement(raw, whaleFromRecord, normalizeWhale)
}

func decodeTrending(raw json.RawMessage) (models.TrendingToken, bool) {
	return decodeElement(raw, trendingFromRecord, normalizeTrending)
}

func decodeAccuracy(raw json.RawMessage) (models.AccuracyPoint, bool) {
	return decodeElement(raw, func(r util.Record) models.AccuracyPoint {
		return models.AccuracyPoint{
			Date:     r.Str("", "date", "period", "week", "label"),
			Accuracy: r.NumOr(0, "accuracy", "accuracy_pct", "win_rate"),
			Signals:  r.IntOr(0, "signals", "signal_count", "count"),
		}
	}, func(p *models.AccuracyPoint) {
		p.Accuracy = clampScore(p.Accuracy)
	})
}

func decodeModule(raw json.RawMessage) (models.ModuleContribution, bool) {
	return decodeElement(raw, func(r util.Record) models.ModuleContribution {
		return models.ModuleContribution{
			Name:  r.Str("", "name", "module", "label"),
			Value: r.NumOr(0, "value", "contribution", "weight", "pct"),
			Color: r.Str("", "color"),
		}
	}, func(m *models.ModuleContribution) {
		m.Value = clampScore(m.Value)
	})
}

func decodeEquity(raw json.RawMessage) (models.EquityPoint, bool) {
	return decodeElement(raw, func(r util.Record) models.EquityPoint {
		return models.EquityPoint{
			Date:      r.Str("", "date", "period", "week", "label"),
			Equity:    r.NumOr(0, "equity", "value", "balance"),
			Benchmark: r.NumOr(0, "benchmark", "baseline", "hodl"),
		}
	}, nil)
}

func decodeConfidence(raw json.RawMessage) (models.ConfidencePoint, bool) {
	return decodeElement(raw, func(r util.Record) models.ConfidencePoint {
		return models.ConfidencePoint{
			Date:          r.Str("", "date", "period", "label"),
			AvgConfidence: r.NumOr(0, "avg_confidence", "avgConfidence", "average", "avg"),
			High:          r.NumOr(0, "high", "max"),
			Low:           r.NumOr(0, "low", "min"),
		}
	}, func(p *models.ConfidencePoint) {
		p.AvgConfidence = clampScore(p.AvgConfidence)
		p.High = clampScore(p.High)
		p.Low = clampScore(p.Low)
	})
}

func decodeWhaleVolume(raw json.RawMessage) (models.WhaleVolumePoint, bool) {
	return decodeElement(raw, func(r util.Record) models.WhaleVolumePoint {
		return models.WhaleVolumePoint{
			Date: r.Str("", "date", "day", "label"),
			ETH:  r.NumOr(0, "eth", "ETH"),
			SOL:  r.NumOr(0, "sol", "SOL"),
			BNB:  r.NumOr(0, "bnb", "BNB"),
		}
	}, nil)
}

func decodeWhaleWallet(raw json.RawMessage) (models.WhaleWallet, bool) {
	return decodeElement(raw, func(r util.Record) models.WhaleWallet {
		return models.WhaleWallet{
			Rank:        r.IntOr(0, "rank"),
			Wallet:      r.Str("", "wallet", "address", "wallet_address"),
			Label:       r.Str("", "label", "wallet_label", "walletLabel"),
			TotalVolume: money(r, "total_volume", "totalVolume", "volume"),
			TxCount:     r.IntOr(0, "tx_count", "txCount", "transactions"),
			ProfitRate:  r.NumOr(0, "profit_rate", "profitRate", "win_rate"),
		}
	}, func(w *models.WhaleWallet) {
		w.ProfitRate = clampScore(w.ProfitRate)
	})
}

func signalFromRecord(r util.Record) models.Signal {
	s := models.Signal{
		ID:             r.Str("", "id", "signal_id"),
		Token:          r.Str("", "token", "symbol"),
		Symbol:         r.Str("", "symbol", "token"),
		Name:           r.Str("", "name", "details.name", "token_name"),
		Chain:          r.Str("", "chain", "network"),
		Type:           r.Str("", "type", "direction", "side"),
		AlertType:      r.Str("", "alert_type", "signal_type", "category"),
		Score:          r.NumOr(0, "score", "confidence", "composite_score"),
		Price:          r.NumOr(0, "price", "price_usd", "details.price_usd"),
		PriceChange24h: r.NumOr(0, "price_change_24h", "priceChange24h", "change_24h", "details.change_24h"),
		MarketCap:      money(r, "market_cap", "marketCap", "details.market_cap"),
		Volume24h:      money(r, "volume_24h", "volume24h", "details.volume_24h"),
		Modules:        moduleScores(r),
		Sources:        r.Strings("sources", "active_sources", "details.active_sources"),
		Outcome:        r.Str("", "outcome", "result"),
	}
	s.CreatedAt, _ = r.Time("created_at", "timestamp", "time")
	if v, ok := r.Num("pnl", "pnl_pct", "return_pct"); ok {
		s.PnL = &v
	}
	return s
}

// moduleScores merges a "modules" object with top-level "<name>_score" keys.
func moduleScores(r util.Record) map[string]float64 {
	out := map[string]float64{}
	if mods, ok := r.Object("modules"); ok {
		for k := range mods {
			if v, ok := mods.Num(k); ok {
				out[k] = v
			}
		}
	}
	for k := range r {
		name, ok := strings.CutSuffix(k, "_score")
		if !ok || name == "" || name == "composite" {
			continue
		}
		if v, ok := r.Num(k); ok {
			out[name] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeSignal(s *models.Signal) {
	s.Token = util.FirstNonEmpty(s.Token, s.Symbol)
	s.Symbol = util.FirstNonEmpty(s.Symbol, s.Token)
	s.Chain = normalizeChain(s.Chain)

	s.AlertType = strings.ToLower(strings.TrimSpace(s.AlertType))
	if s.AlertType == "" {
		s.AlertType = models.AlertNeutral
	}
	switch t := strings.ToUpper(strings.TrimSpace(s.Type)); t {
	case models.TypeBuy, models.TypeSell, models.TypeWatch:
		s.Type = t
	default:
		s.Type = models.DirectionFromAlert(s.AlertType)
	}

	s.Score = clampScore(s.Score)
	s.ConfidenceLabel = models.ConfidenceLabel(s.Score)
	for k, v := range s.Modules {
		s.Modules[k] = clampScore(v)
	}

	switch o := strings.ToUpper(strings.TrimSpace(s.Outcome)); o {
	case models.OutcomeWin, models.OutcomeLoss, models.OutcomePending:
		s.Outcome = o
	default:
		s.Outcome = ""
	}
	if s.PnL != nil && (math.IsNaN(*s.PnL) || math.IsInf(*s.PnL, 0)) {
		s.PnL = nil
	}
}

func whaleFromRecord(r util.Record) models.WhaleTransaction {
	w := models.WhaleTransaction{
		ID:          r.Str("", "id", "tx_id"),
		Wallet:      r.Str("", "wallet", "wallet_address", "address", "from"),
		WalletLabel: r.Str("", "wallet_label", "walletLabel", "label"),
		Type:        r.Str("", "type", "side", "direction"),
		SignalType:  r.Str("", "signal_type", "alert_type"),
		Token:       r.Str("", "token", "symbol"),
		Symbol:      r.Str("", "symbol", "token"),
		Name:        r.Str("", "name", "details.name"),
		Chain:       r.Str("", "chain", "network"),
		Amount:      r.NumOr(0, "amount", "quantity"),
		ValueUSD:    r.NumOr(0, "value_usd", "value", "usd_value", "volume_24h"),
		Score:       r.NumOr(0, "score", "confidence"),
		TxHash:      r.Str("", "tx_hash", "txHash", "hash"),
	}
	w.CreatedAt, _ = r.Time("created_at", "timestamp", "time")

	d := &models.WhaleDetails{Reasons: r.Strings("details.reasons", "reasons")}
	if v, ok := r.Num("details.change_24h", "change_24h"); ok {
		d.Change24h = &v
	}
	if v, ok := r.Num("details.vol_mcap_ratio", "vol_mcap_ratio"); ok {
		d.VolMcapRatio = &v
	}
	if d.Change24h != nil || d.VolMcapRatio != nil || len(d.Reasons) > 0 {
		w.Details = d
	}
	return w
}

func normalizeWhale(w *models.WhaleTransaction) {
	w.Token = util.FirstNonEmpty(w.Token, w.Symbol)
	w.Symbol = util.FirstNonEmpty(w.Symbol, w.Token)
	w.Chain = normalizeChain(w.Chain)
	w.Score = clampScore(w.Score)

	switch t := strings.ToUpper(strings.TrimSpace(w.Type)); t {
	case models.WhaleBuy, models.WhaleSell, models.WhaleTransfer, models.WhaleAccumulation, models.WhaleDistribution:
		w.Type = t
	default:
		st := strings.ToLower(w.SignalType)
		switch {
		case strings.Contains(st, "accumulation"):
			w.Type = models.WhaleAccumulation
		case st != "":
			w.Type = models.WhaleDistribution
		default:
			w.Type = models.WhaleTransfer
		}
	}
}

func trendingFromRecord(r util.Record) models.TrendingToken {
	return models.TrendingToken{
		Symbol:        r.Str("", "symbol", "token"),
		Name:          r.Str("", "name", "details.name"),
		Chain:         r.Str("", "chain", "network"),
		Price:         r.NumOr(0, "price", "price_usd"),
		Change24h:     r.NumOr(0, "change_24h", "change24h", "price_change_24h"),
		Volume:        money(r, "volume", "volume_24h"),
		AvgScore:      r.NumOr(0, "avg_score", "avgScore", "score"),
		PeakScore:     r.NumOr(0, "peak_score", "peakScore", "max_score"),
		SignalCount:   r.IntOr(0, "signal_count", "signals", "alert_count", "count"),
		WhaleScore:    r.NumOr(0, "whale_score", "avg_whale_score", "whale"),
		WhaleInterest: r.Str("", "whale_interest", "whaleInterest"),
	}
}

func normalizeTrending(t *models.TrendingToken) {
	t.Symbol = util.FirstNonEmpty(t.Symbol, t.Name)
	t.Name = util.FirstNonEmpty(t.Name, t.Symbol)
	t.Chain = normalizeChain(t.Chain)
	t.AvgScore = clampScore(t.AvgScore)
	t.PeakScore = clampScore(t.PeakScore)
	t.WhaleScore = clampScore(t.WhaleScore)

	switch tier := strings.ToUpper(strings.TrimSpace(t.WhaleInterest)); tier {
	case models.TierHigh, models.TierMedium, models.TierLow:
		t.WhaleInterest = tier
	default:
		t.WhaleInterest = models.WhaleTier(t.WhaleScore)
	}
}

// money keeps preformatted strings and renders raw numbers compactly.
func money(r util.Record, keys ...string) string {
	for _, k := range keys {
		if !r.Has(k) {
			continue
		}
		if v, ok := r.Num(k); ok {
			return util.FormatNumber(v)
		}
		if s := r.Str("", k); s != "" {
			return s
		}
	}
	return ""
}

func normalizeChain(chain string) string {
	chain = strings.TrimSpace(chain)
	if chain == "" || strings.EqualFold(chain, models.ChainMulti) {
		return models.ChainMulti
	}
	return strings.ToUpper(chain)
}

func clampScore(v float64) float64 { return util.Clamp(v, 0, 100) }
