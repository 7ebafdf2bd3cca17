package models

import "strings"

// Tier labels.
const (
	TierHigh   = "HIGH"
	TierMedium = "MEDIUM"
	TierLow    = "LOW"
)

// WhaleTier buckets a whale sub-score: >= 60 HIGH, >= 30 MEDIUM, else LOW.
func WhaleTier(score float64) string {
	switch {
	case score >= 60:
		return TierHigh
	case score >= 30:
		return TierMedium
	}
	return TierLow
}

// ConfidenceLabel buckets a signal score: >= 75 HIGH, >= 55 MEDIUM, else LOW.
func ConfidenceLabel(score float64) string {
	switch {
	case score >= 75:
		return TierHigh
	case score >= 55:
		return TierMedium
	}
	return TierLow
}

// FearGreedLabel names an index value using the alternative.me bands.
func FearGreedLabel(value int) string {
	switch {
	case value <= 20:
		return "Extreme Fear"
	case value <= 40:
		return "Fear"
	case value <= 60:
		return "Neutral"
	case value <= 80:
		return "Greed"
	}
	return "Extreme Greed"
}

// DirectionFromAlert maps an engine alert type onto BUY, SELL or WATCH.
func DirectionFromAlert(alertType string) string {
	switch strings.ToLower(alertType) {
	case AlertBearish:
		return TypeSell
	case AlertBullish, AlertMomentum, AlertWhale, AlertNewListing:
		return TypeBuy
	}
	return TypeWatch
}

// AlertTypes lists every alert type the signals filter accepts besides ALL.
func AlertTypes() []string {
	return []string{AlertBullish, AlertBearish, AlertMomentum, AlertWhale, AlertNewListing, AlertNeutral}
}
