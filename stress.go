package riskfolio

import "math"

// StressScenario is a historical crisis template applied to the current portfolio.
type StressScenario struct {
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	MarketDrop           float64 `json:"marketDrop"`           // negative fraction, -0.37 is a 37% drop.
	Duration             int     `json:"duration"`             // in trading days.
	VolatilityMultiplier float64 `json:"volatilityMultiplier"` // volatility observed during the crisis relative to normal.
}

// StressResult is a scenario with its estimated impact on a portfolio.
type StressResult struct {
	StressScenario
	EstimatedLoss    float64 `json:"estimatedLoss"`    // in currency units, non-negative.
	EstimatedLossPct float64 `json:"estimatedLossPct"` // in percent.
}

// StressScenarios is the catalog of scenarios used by StressTest, in reporting order.
var StressScenarios = []StressScenario{
	{
		Name:                 "2008 crisis (Lehman Brothers)",
		Description:          "Global financial crisis of 2008",
		MarketDrop:           -0.37,
		Duration:             252,
		VolatilityMultiplier: 2.5,
	},
	{
		Name:                 "COVID-19 March 2020",
		Description:          "Sharp market sell-off of March 2020",
		MarketDrop:           -0.34,
		Duration:             30,
		VolatilityMultiplier: 3.0,
	},
	{
		Name:                 "Market correction -20%",
		Description:          "Typical market correction",
		MarketDrop:           -0.20,
		Duration:             60,
		VolatilityMultiplier: 1.8,
	},
	{
		Name:                 "Sudden market shock",
		Description:          "One-off shock (-10% within a day)",
		MarketDrop:           -0.10,
		Duration:             1,
		VolatilityMultiplier: 5.0,
	},
}

// StressTest estimates the loss of a portfolio worth portfolioValue under every scenario of
// StressScenarios, in catalog order.
//
// Historical returns are accepted for a future correlation-aware scaling, the current estimate
// only depends on each scenario's market drop.
func StressTest(portfolioValue float64, returns []float64) []StressResult {
	results := make([]StressResult, 0, len(StressScenarios))
	for _, s := range StressScenarios {
		results = append(results, StressResult{
			StressScenario:   s,
			EstimatedLoss:    math.Abs(portfolioValue * s.MarketDrop),
			EstimatedLossPct: math.Abs(s.MarketDrop * 100),
		})
	}
	return results
}
