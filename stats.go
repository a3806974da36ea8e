package riskfolio

import "math"

// TradingDaysPerYear is the number of trading days used to annualize daily figures.
const TradingDaysPerYear = 252

// DefaultRiskFreeRate is the annualized risk-free rate used when none is configured.
const DefaultRiskFreeRate = 0.02

// mean returns the arithmetic mean of values, 0 if empty.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleVariance returns the Bessel-corrected variance of values.
// ok is false when there are fewer than two values.
func sampleVariance(values []float64) (variance float64, ok bool) {
	if len(values) < 2 {
		return 0, false
	}
	m := mean(values)
	for _, v := range values {
		variance += (v - m) * (v - m)
	}
	return variance / float64(len(values)-1), true
}

// Beta returns the sensitivity of portfolio returns to market returns: their sample covariance
// divided by the sample variance of the market.
//
// It falls back to 1.0 when the series lengths differ, on empty series, and when the market
// variance is zero (or cannot be estimated from a single observation).
func Beta(portfolio, market []float64) float64 {
	if len(portfolio) != len(market) || len(portfolio) < 2 {
		return 1.0
	}
	pm, mm := mean(portfolio), mean(market)
	var cov, variance float64
	for i := range portfolio {
		dp, dm := portfolio[i]-pm, market[i]-mm
		cov += dp * dm
		variance += dm * dm
	}
	n := float64(len(portfolio) - 1)
	cov, variance = cov/n, variance/n
	if variance == 0 {
		return 1.0
	}
	return cov / variance
}

// SharpeRatio returns the excess annualized return per unit of annualized volatility of a series
// of daily returns.
//
// The mean daily return is annualized by compounding over TradingDaysPerYear, riskFreeRate is
// already annualized. It returns 0 if the volatility is zero or cannot be estimated.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	vol := Volatility(returns)
	if vol == 0 {
		return 0
	}
	annualized := math.Pow(1+mean(returns), TradingDaysPerYear) - 1
	return (annualized - riskFreeRate) / vol
}

// MaxDrawdown returns the largest decline from a running peak of additive cumulative returns.
//
// Each decline is normalized by the wealth index 1+peak. The result is in [0,1] for a
// meaningful series, and 0 for an empty one.
func MaxDrawdown(cumulative []float64) float64 {
	if len(cumulative) == 0 {
		return 0
	}
	var drawdown float64
	peak := cumulative[0]
	for _, current := range cumulative[1:] {
		if current > peak {
			peak = current
			continue
		}
		drawdown = math.Max(drawdown, (peak-current)/(1+peak))
	}
	return drawdown
}

// Volatility returns the annualized sample standard deviation of daily returns.
// It is 0 for fewer than two returns.
func Volatility(returns []float64) float64 {
	variance, ok := sampleVariance(returns)
	if !ok {
		return 0
	}
	return math.Sqrt(variance * TradingDaysPerYear)
}
