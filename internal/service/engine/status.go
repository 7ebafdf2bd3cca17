package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"GodSignal/internal/domain/models"
	"GodSignal/pkg/util"
)

var errNoStatus = errors.New("status object has no status field")

const defaultModules = 6

func statusFromBody(body json.RawMessage, now time.Time) (models.SystemStatus, error) {
	r, ok := util.ParseRecord(body)
	if !ok {
		return models.SystemStatus{}, fmt.Errorf("expected object, got %.16s", body)
	}
	status := r.Str("", "status")
	if status == "" {
		return models.SystemStatus{}, errNoStatus
	}

	st := models.SystemStatus{
		Status:        strings.ToUpper(status),
		Uptime:        uptime(r),
		LastScan:      now,
		AccuracyRate:  clampScore(r.NumOr(0, "accuracy_rate", "accuracy")),
		ModulesOnline: r.IntOr(defaultModules, "modules_online"),
		TotalModules:  r.IntOr(defaultModules, "total_modules"),
	}
	if t, ok := r.Time("last_signal_at", "last_scan"); ok {
		st.LastScan = t
	}

	total := r.IntOr(0, "database.total_signals")
	st.ActiveSignals = r.IntOr(total, "active_signals")
	st.TotalSignalsGenerated = r.IntOr(total, "total_signals_generated")
	return st, nil
}

// uptime renders uptime_seconds as hours with one decimal, e.g. "12.5h".
func uptime(r util.Record) string {
	if secs, ok := r.Num("uptime_seconds"); ok && secs > 0 {
		return fmt.Sprintf("%.1fh", secs/3600)
	}
	return r.Str("0h", "uptime")
}
