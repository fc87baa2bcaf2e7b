package utils

import "math"

// Round2 rounds x to 2 decimal places. Item amounts and totals are rounded
// before persisting so the stored numeric(12,2) columns match what the
// calculator reported.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
