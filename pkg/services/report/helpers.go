package report

import "math"

// round1 truncates derived rates to one decimal for presentation.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// pctOf is the integer share of amount in total, with the denominator
// floored at 1 so empty totals never divide by zero.
func pctOf(amount, total float64) int {
	return int(math.Round(100 * amount / math.Max(total, 1)))
}

// safeDiv divides with the denominator floored at 1.
func safeDiv(num, den float64) float64 {
	return num / math.Max(den, 1)
}
