package riskfolio

import (
	"errors"
	"fmt"

	"github.com/etnz/riskfolio/date"
)

var (
	// ErrEmptySeries is returned when no finite sample is available to analyze.
	ErrEmptySeries = errors.New("empty return series")
	// ErrInvalidOptions is returned for analysis options out of their domain.
	ErrInvalidOptions = errors.New("invalid analysis options")
)

// FallbackPortfolioValue is the portfolio value used when neither the options nor the series
// provide a positive one.
const FallbackPortfolioValue = 10000

// DefaultCurrency is the reporting currency when none is selected.
const DefaultCurrency = "PLN"

// Options are the user selected parameters of an analysis.
type Options struct {
	ConfidenceLevel float64 // in (0,1), typically 0.95 or 0.99.
	Horizon         int     // in trading days, at least 1.
	RiskFreeRate    float64 // annualized.
	BinCount        int     // histogram bins, DefaultBinCount if below 1.
	PortfolioValue  float64 // overrides the latest value of the series when positive.
	Currency        string  // ISO code of the portfolio currency, DefaultCurrency if empty.
}

// RiskMetrics is the set of metrics computed for a return series.
//
// Currency figures are non-negative losses. MaxDrawdown and Volatility are fractions.
type RiskMetrics struct {
	VaR95               float64 `json:"var95"`
	VaR99               float64 `json:"var99"`
	ExpectedShortfall95 float64 `json:"expectedShortfall95"`
	ExpectedShortfall99 float64 `json:"expectedShortfall99"`
	Beta                float64 `json:"beta"`
	SharpeRatio         float64 `json:"sharpeRatio"`
	MaxDrawdown         float64 `json:"maxDrawdown"`
	Volatility          float64 `json:"volatility"`
}

// Analysis is the result of analyzing a return series.
type Analysis struct {
	Options        Options
	Currency       string
	Samples        int     // number of finite samples analyzed.
	PortfolioValue float64 // the value the currency figures are computed for.
	Metrics        RiskMetrics
	// VaR and ExpectedShortfall at the selected confidence level.
	VaR, ExpectedShortfall float64
	Stress                 []StressResult
	Histogram              []HistogramBin // daily returns, in percent.
	PLHistogram            []HistogramBin // daily profits and losses, in currency units.
}

// Validate checks that options are in their domain.
func (o Options) Validate() error {
	if !(o.ConfidenceLevel > 0 && o.ConfidenceLevel < 1) {
		return fmt.Errorf("%w: confidence level %v not in (0,1)", ErrInvalidOptions, o.ConfidenceLevel)
	}
	if o.Horizon < 1 {
		return fmt.Errorf("%w: horizon %d is less than one day", ErrInvalidOptions, o.Horizon)
	}
	if o.PortfolioValue < 0 {
		return fmt.Errorf("%w: negative portfolio value %v", ErrInvalidOptions, o.PortfolioValue)
	}
	return nil
}

// Metrics computes all risk metrics of returns for a portfolio worth portfolioValue.
//
// market is the market return series used for beta, its length must match returns otherwise
// beta defaults to 1.
func Metrics(returns, cumulative, market []float64, portfolioValue float64, horizon int, riskFreeRate float64) RiskMetrics {
	return RiskMetrics{
		VaR95:               VaR(returns, 0.95, portfolioValue, horizon),
		VaR99:               VaR(returns, 0.99, portfolioValue, horizon),
		ExpectedShortfall95: ExpectedShortfall(returns, 0.95, portfolioValue, horizon),
		ExpectedShortfall99: ExpectedShortfall(returns, 0.99, portfolioValue, horizon),
		Beta:                Beta(returns, market),
		SharpeRatio:         SharpeRatio(returns, riskFreeRate),
		MaxDrawdown:         MaxDrawdown(cumulative),
		Volatility:          Volatility(returns),
	}
}

// Analyze computes the full risk analysis of a series.
//
// Non-finite samples are dropped first. Samples of market are matched by date with the series,
// beta defaults to 1 when they do not cover the series exactly.
func Analyze(series Series, market Series, opts Options) (*Analysis, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	series = series.Clean()
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	value := opts.PortfolioValue
	if value <= 0 {
		latest, _ := series.Latest()
		value = latest.PortfolioValue
	}
	if value <= 0 {
		value = FallbackPortfolioValue
	}

	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	returns := series.Returns()
	a := &Analysis{
		Options:           opts,
		Currency:          currency,
		Samples:           len(series),
		PortfolioValue:    value,
		Metrics:           Metrics(returns, series.CumulativeReturns(), alignMarket(series, market.Clean()), value, opts.Horizon, opts.RiskFreeRate),
		VaR:               VaR(returns, opts.ConfidenceLevel, value, opts.Horizon),
		ExpectedShortfall: ExpectedShortfall(returns, opts.ConfidenceLevel, value, opts.Horizon),
		Stress:            StressTest(value, returns),
		Histogram:         PLHistogramClosed(returns, opts.BinCount),
		PLHistogram:       PLValueHistogram(returns, value, opts.BinCount),
	}
	return a, nil
}

// alignMarket returns the market returns on the dates of series.
// The result is shorter than series if some dates are missing in market.
//
// Undated samples are aligned by position.
func alignMarket(series, market Series) []float64 {
	if !dated(series) || !dated(market) {
		return market.Returns()
	}
	byDate := make(map[date.Date]float64, len(market))
	for _, m := range market {
		byDate[m.Date] = m.Return
	}
	aligned := make([]float64, 0, len(series))
	for _, s := range series {
		if r, ok := byDate[s.Date]; ok {
			aligned = append(aligned, r)
		}
	}
	return aligned
}

// dated reports whether every sample of s has a date.
func dated(s Series) bool {
	for _, sample := range s {
		if sample.Date.IsZero() {
			return false
		}
	}
	return true
}

// MarshalJSON renders the analysis in a stable field order.
func (a *Analysis) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", a.Currency)
	w.Append("samples", a.Samples)
	w.Append("portfolioValue", a.PortfolioValue)
	w.Append("confidenceLevel", a.Options.ConfidenceLevel)
	w.Append("horizon", a.Options.Horizon)
	w.Append("var", a.VaR)
	w.Append("expectedShortfall", a.ExpectedShortfall)
	w.Append("metrics", a.Metrics)
	w.Append("stress", a.Stress)
	w.Append("histogram", a.Histogram)
	w.Append("plHistogram", a.PLHistogram)
	return w.MarshalJSON()
}
