package metrics

import "math"

// Engine results carry display-ready values: every figure is rounded here,
// at the precision the metric is defined with, so downstream comparisons
// (insight rules, API payloads) all see the same numbers.

func round0(v float64) float64 {
	return math.Round(v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func pct(num, den float64) float64 {
	return safeDiv(num, den) * 100
}
