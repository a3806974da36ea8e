// Package riskfolio provides the risk analytics of a personal portfolio, computed from the
// series of its daily returns.
//
// The core functionalities include:
//   - Value at Risk and Expected Shortfall using historical simulation, scaled to a time horizon
//     with the square-root-of-time rule.
//   - Beta against a market series, Sharpe ratio, maximum drawdown and annualized volatility.
//   - Stress testing against a fixed catalog of historical crises.
//   - Histograms of the distribution of returns and of profits and losses.
//   - Return series providers: JSONL files, daily portfolio values, the dashboard backend over
//     HTTP, or a synthetic generator.
//
// All risk functions are pure: they never modify their inputs and are safe for concurrent use.
// They expect finite numbers, NaN and infinite values must be removed first (see Series.Clean
// and Finite). Degenerate inputs never fail: they return a neutral value, 0 for most metrics
// and 1 for beta.
//
// This package serves as the foundational logic for the `rf` command-line tool.
package riskfolio
