package riskfolio

import (
	"math"

	"github.com/etnz/riskfolio/date"
)

// ReturnSample is the portfolio state on a trading day.
type ReturnSample struct {
	Date           date.Date `json:"date"`
	PortfolioValue float64   `json:"portfolioValue"`
	// Return is the fractional daily return, 0.012 is +1.2%.
	Return float64 `json:"return"`
	// CumulativeReturn is the additive running sum of daily returns since the start of the
	// series, it is not compounded.
	CumulativeReturn float64 `json:"cumulativeReturn"`
}

// finite reports whether the sample holds only finite numbers.
func (s ReturnSample) finite() bool {
	return isFinite(s.PortfolioValue) && isFinite(s.Return) && isFinite(s.CumulativeReturn)
}

// Series is a chronological sequence of samples, one per trading day.
//
// A Series is never modified by the risk functions.
type Series []ReturnSample

// Returns returns the daily returns of the series.
func (s Series) Returns() []float64 {
	r := make([]float64, len(s))
	for i, sample := range s {
		r[i] = sample.Return
	}
	return r
}

// CumulativeReturns returns the cumulative returns of the series.
func (s Series) CumulativeReturns() []float64 {
	r := make([]float64, len(s))
	for i, sample := range s {
		r[i] = sample.CumulativeReturn
	}
	return r
}

// Clean returns a copy of the series without samples holding NaN or infinite values.
//
// Risk functions expect finite inputs, series must be cleaned before use.
func (s Series) Clean() Series {
	clean := make(Series, 0, len(s))
	for _, sample := range s {
		if sample.finite() {
			clean = append(clean, sample)
		}
	}
	return clean
}

// Latest returns the last sample, and false if the series is empty.
func (s Series) Latest() (ReturnSample, bool) {
	if len(s) == 0 {
		return ReturnSample{}, false
	}
	return s[len(s)-1], true
}

// Tail returns the last n samples of the series, the full series if it is shorter.
func (s Series) Tail(n int) Series {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Finite returns a copy of values without NaN and infinite values.
func Finite(values []float64) []float64 {
	res := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			res = append(res, v)
		}
	}
	return res
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// NewSeries builds a series from daily portfolio values.
//
// The first day has a zero return. A day following a non-positive value also has a zero return.
// Cumulative returns are the additive running sum of daily returns.
func NewSeries(values *date.History[float64]) Series {
	s := make(Series, 0, values.Len())
	var prev, cumulative float64
	for on, v := range values.Values() {
		var r float64
		if len(s) > 0 && prev > 0 {
			r = (v - prev) / prev
		}
		cumulative += r
		s = append(s, ReturnSample{
			Date:             on,
			PortfolioValue:   v,
			Return:           r,
			CumulativeReturn: cumulative,
		})
		prev = v
	}
	return s
}
