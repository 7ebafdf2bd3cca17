package usecase

import (
	"GodSignal/internal/domain/models"

	"github.com/shopspring/decimal"
)

var (
	hundred        = decimal.NewFromInt(100)
	startingEquity = decimal.NewFromInt(10000)
)

// ComputeStats derives win rate, average PnL, best signal and total return.
// Closed means an outcome other than PENDING. Total return compares the last
// equity point with the 10000 starting balance.
func ComputeStats(signals []models.Signal, equity []models.EquityPoint) models.AnalyticsStats {
	st := models.AnalyticsStats{TotalSignals: len(signals)}

	sum := decimal.Zero
	var best *models.Signal
	for i := range signals {
		s := signals[i]
		if !s.Settled() {
			continue
		}
		st.Closed++
		switch s.Outcome {
		case models.OutcomeWin:
			st.Wins++
		case models.OutcomeLoss:
			st.Losses++
		}
		sum = sum.Add(decimal.NewFromFloat(s.PnLValue()))
		if best == nil || s.PnLValue() > best.PnLValue() {
			best = &s
		}
	}
	st.BestSignal = best

	if st.Closed > 0 {
		st.WinRate = decimal.NewFromInt(int64(st.Wins)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(st.Closed))).
			Round(1).
			InexactFloat64()
	}
	st.AvgPnL = sum.Div(decimal.NewFromInt(int64(max(st.Closed, 1)))).Round(1).InexactFloat64()

	if n := len(equity); n > 0 && equity[n-1].Equity != 0 {
		st.TotalReturn = decimal.NewFromFloat(equity[n-1].Equity).
			Sub(startingEquity).
			Div(startingEquity).
			Mul(hundred).
			Round(1).
			InexactFloat64()
	}
	return st
}
