package usecase

import (
	"sort"
	"strings"

	"GodSignal/internal/domain/models"
	"GodSignal/pkg/util"
)

const allFilter = "ALL"

func typeOrAll(v string) string {
	if v == "" {
		return allFilter
	}
	return v
}

// SortByScore returns a copy ordered by score, highest first. Ties keep input order.
func SortByScore(signals []models.Signal) []models.Signal {
	out := append(make([]models.Signal, 0, len(signals)), signals...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// ActiveSignals keeps signals whose outcome is still pending.
func ActiveSignals(signals []models.Signal) []models.Signal {
	out := make([]models.Signal, 0, len(signals))
	for _, s := range signals {
		if s.Outcome == models.OutcomePending {
			out = append(out, s)
		}
	}
	return out
}

// FilterSignals keeps signals whose token contains search (case-insensitive)
// and whose alert type equals alertType. An empty search or ALL matches everything.
func FilterSignals(signals []models.Signal, search, alertType string) []models.Signal {
	out := make([]models.Signal, 0, len(signals))
	for _, s := range signals {
		if search != "" && !util.ContainsFold(s.Token, search) {
			continue
		}
		if alertType != "" && alertType != allFilter && s.AlertType != alertType {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterWhales keeps transactions on chain, compared case-insensitively since
// the engine upper-cases chain names. ALL keeps everything.
func FilterWhales(txs []models.WhaleTransaction, chain string) []models.WhaleTransaction {
	keepAll := chain == "" || strings.EqualFold(chain, allFilter)
	out := make([]models.WhaleTransaction, 0, len(txs))
	for _, tx := range txs {
		if !keepAll && !strings.EqualFold(tx.Chain, chain) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// BestSignals returns up to n winning signals ordered by realized return.
func BestSignals(signals []models.Signal, n int) []models.Signal {
	wins := make([]models.Signal, 0, len(signals))
	for _, s := range signals {
		if s.Outcome == models.OutcomeWin {
			wins = append(wins, s)
		}
	}
	sort.SliceStable(wins, func(i, j int) bool { return wins[i].PnLValue() > wins[j].PnLValue() })
	if len(wins) > n {
		wins = wins[:n]
	}
	return wins
}
