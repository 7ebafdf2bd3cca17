package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"GodSignal/internal/domain/models"
)

// ExportFilename is the attachment name used for CSV downloads.
const ExportFilename = "god-signal-export.csv"

var csvHeader = []string{"Token", "Chain", "Type", "Score", "Whale", "DEX", "Social", "SmartMoney", "Prediction", "Time"}

// Module aliases per CSV column, engine names first.
var csvModules = [][]string{
	{"whale", "whale_activity", "whaleActivity"},
	{"dex", "dex_activity"},
	{"social", "social_buzz", "socialBuzz"},
	{"smart_money", "smartMoney"},
	{"prediction", "prediction_market"},
}

// WriteSignalsCSV writes one row per signal in fixed column order. Missing
// module scores and timestamps are left empty.
func WriteSignalsCSV(w io.Writer, signals []models.Signal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range signals {
		s := &signals[i]
		row := make([]string, 0, len(csvHeader))
		row = append(row, s.Token, s.Chain, s.AlertType, formatFloat(s.Score))
		for _, aliases := range csvModules {
			if v, ok := s.ModuleScore(aliases...); ok {
				row = append(row, formatFloat(v))
			} else {
				row = append(row, "")
			}
		}
		created := ""
		if !s.CreatedAt.IsZero() {
			created = s.CreatedAt.UTC().Format(time.RFC3339)
		}
		row = append(row, created)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
