package riskfolio

import "slices"

// DefaultBinCount is the number of bins used when a histogram is requested with no valid count.
const DefaultBinCount = 25

// HistogramBin is a single bin of a distribution.
//
// Bounds and center are in percent for a returns histogram, and in currency units for a P&L
// histogram. Frequency is in percent of the total number of observations for a returns
// histogram, and the raw count for a P&L histogram.
type HistogramBin struct {
	BinStart  float64 `json:"binStart"`
	BinEnd    float64 `json:"binEnd"`
	BinCenter float64 `json:"binCenter"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// PLHistogram partitions returns into binCount equal-width bins between their min and max.
//
// Every bin is half-open [binStart, binEnd): returns equal to the maximum are not counted in any
// bin, and a constant series yields only empty bins. Use PLHistogramClosed to count every
// observation.
//
// It returns an empty slice for empty returns. binCount below 1 uses DefaultBinCount.
func PLHistogram(returns []float64, binCount int) []HistogramBin {
	return histogram(returns, binCount, 100, false, true)
}

// PLHistogramClosed is like PLHistogram, but the last bin includes its upper bound so that the
// sum of counts always equals the number of returns.
func PLHistogramClosed(returns []float64, binCount int) []HistogramBin {
	return histogram(returns, binCount, 100, true, true)
}

// PLValueHistogram bins the profits and losses in currency units of a portfolio worth
// portfolioValue. The last bin is closed and Frequency holds the raw count.
func PLValueHistogram(returns []float64, portfolioValue float64, binCount int) []HistogramBin {
	pl := make([]float64, len(returns))
	for i, r := range returns {
		pl[i] = r * portfolioValue
	}
	return histogram(pl, binCount, 1, true, false)
}

// histogram is the shared binning implementation.
// Values are bucketed on their raw scale, and bounds are multiplied by unit in the result.
func histogram(values []float64, binCount int, unit float64, closed, relative bool) []HistogramBin {
	bins := []HistogramBin{}
	if len(values) == 0 {
		return bins
	}
	if binCount < 1 {
		binCount = DefaultBinCount
	}
	lo, hi := slices.Min(values), slices.Max(values)
	width := (hi - lo) / float64(binCount)

	// bounds[i] and bounds[i+1] delimit bin i, the last bound is exactly hi.
	bounds := make([]float64, binCount+1)
	for i := range binCount {
		bounds[i] = lo + float64(i)*width
	}
	bounds[binCount] = hi

	counts := make([]int, binCount)
	for _, v := range values {
		for i := range binCount {
			last := i == binCount-1
			if v >= bounds[i] && (v < bounds[i+1] || (closed && last && v <= hi)) {
				counts[i]++
				break
			}
		}
	}

	for i, count := range counts {
		start, end := bounds[i], bounds[i+1]
		bin := HistogramBin{
			BinStart:  start * unit,
			BinEnd:    end * unit,
			BinCenter: (start + end) / 2 * unit,
			Count:     count,
			Frequency: float64(count),
		}
		if relative {
			bin.Frequency = float64(count) / float64(len(values)) * 100
		}
		bins = append(bins, bin)
	}
	return bins
}
