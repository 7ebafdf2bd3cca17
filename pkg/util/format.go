package util

import (
	"fmt"
	"math"
)

// FormatNumber renders a dollar amount in compact form: $1.2B, $890.0M, $4.5K, $12.00.
func FormatNumber(n float64) string {
	switch {
	case n >= 1e9:
		return fmt.Sprintf("$%.1fB", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("$%.1fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("$%.1fK", n/1e3)
	}
	return fmt.Sprintf("$%.2f", n)
}

// Clamp bounds v to [lo, hi]; NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
