package riskfolio

import (
	"math"
	"slices"
)

// scaledSorted returns a sorted copy of returns (worst first), each scaled to the horizon using
// the square-root-of-time rule.
//
// The rule assumes i.i.d. returns, it is an approximation for horizons above one day.
func scaledSorted(returns []float64, horizon int) []float64 {
	if horizon < 1 {
		horizon = 1
	}
	scale := math.Sqrt(float64(horizon))
	sorted := slices.Clone(returns)
	slices.Sort(sorted)
	for i := range sorted {
		sorted[i] *= scale
	}
	return sorted
}

// loss converts a scaled return into a non-negative loss for a portfolio worth value.
//
// A gain at the tail point is no loss at all, so it maps to 0.
func loss(r, value float64) float64 {
	return math.Max(0, -r*value)
}

// tailIndex returns floor((1-confidence)*n) clamped into the valid index range of a slice of length n.
func tailIndex(confidence float64, n int) int {
	i := int(math.Floor((1 - confidence) * float64(n)))
	return max(0, min(i, n-1))
}

// VaR computes the historical simulation Value at Risk of a portfolio worth portfolioValue over
// a horizon (in days) at the given confidence level (e.g. 0.95).
//
// The result is a non-negative loss in currency units: the magnitude of the selected return
// times the portfolio value, or 0 when the selected return is a gain. This differs from a plain
// absolute value, which would report a gain at the tail point as a loss. It returns 0 for an
// empty series.
//
// On short series the tail index is 0 for high confidence levels, so VaR 99% can be equal to
// VaR 95% and to the single worst observed return.
func VaR(returns []float64, confidence, portfolioValue float64, horizon int) float64 {
	if len(returns) == 0 {
		return 0
	}
	sorted := scaledSorted(returns, horizon)
	return loss(sorted[tailIndex(confidence, len(sorted))], portfolioValue)
}

// ExpectedShortfall computes the mean loss of the tail up to and including the VaR point.
//
// It uses the same sorting, scaling and conversion as VaR and is therefore never lower than
// VaR for the same arguments.
func ExpectedShortfall(returns []float64, confidence, portfolioValue float64, horizon int) float64 {
	if len(returns) == 0 {
		return 0
	}
	sorted := scaledSorted(returns, horizon)
	tail := sorted[:tailIndex(confidence, len(sorted))+1]
	return loss(mean(tail), portfolioValue)
}
