package riskfolio

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"github.com/etnz/riskfolio/date"
)

// Provider supplies the return series of a portfolio.
type Provider interface {
	// Series returns the last 'days' trading days of the portfolio, chronologically.
	Series(ctx context.Context, days int) (Series, error)
}

// FileProvider reads a return series from a JSONL file, one sample per line.
type FileProvider struct {
	Filename string
}

func (p FileProvider) Series(_ context.Context, days int) (Series, error) {
	f, err := os.Open(p.Filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open return series: %w", err)
	}
	defer f.Close()
	s, err := Decode(p.Filename, f)
	if err != nil {
		return nil, err
	}
	return s.Tail(days), nil
}

// ValueProvider reads daily portfolio values from a JSONL file and derives the return series.
type ValueProvider struct {
	Filename string
}

func (p ValueProvider) Series(_ context.Context, days int) (Series, error) {
	f, err := os.Open(p.Filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio values: %w", err)
	}
	defer f.Close()
	h, err := DecodeValues(p.Filename, f)
	if err != nil {
		return nil, err
	}
	// one more day is needed for the first return.
	s := NewSeries(h)
	if len(s) > 0 {
		s = s[1:]
	}
	return rebase(s.Tail(days)), nil
}

// rebase recomputes cumulative returns from the start of s.
func rebase(s Series) Series {
	res := make(Series, len(s))
	var cumulative float64
	for i, sample := range s {
		cumulative += sample.Return
		sample.CumulativeReturn = cumulative
		res[i] = sample
	}
	return res
}

// SyntheticProvider generates a plausible return series for a portfolio without history.
//
// Daily returns have a small positive drift, mean reversion toward zero and volatility
// clustering.
type SyntheticProvider struct {
	InitialValue float64   // FallbackPortfolioValue if not positive.
	End          date.Date // last day of the series, today if zero.
	Seed         uint64
}

const (
	syntheticDrift         = 0.0003
	syntheticMeanReversion = -0.1
	syntheticBaseVol       = 0.015
	syntheticClustering    = 0.005
)

func (p SyntheticProvider) Series(ctx context.Context, days int) (Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	value := p.InitialValue
	if value <= 0 {
		value = FallbackPortfolioValue
	}
	end := p.End
	if end.IsZero() {
		end = date.Today()
	}
	rng := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))

	s := make(Series, 0, max(days, 0))
	var prev, cumulative float64
	for _, on := range date.TradingDays(end, days) {
		vol := syntheticBaseVol + syntheticClustering*math.Abs(prev)
		shock := (rng.Float64() - 0.5) * 2 * vol
		r := syntheticDrift + syntheticMeanReversion*prev + shock
		cumulative += r
		s = append(s, ReturnSample{
			Date:             on,
			PortfolioValue:   value * (1 + cumulative),
			Return:           r,
			CumulativeReturn: cumulative,
		})
		prev = r
	}
	return s, nil
}

// SyntheticMarket returns a market proxy for series, each return is 0.8 times the portfolio
// return plus a uniform noise in [-0.005, 0.005).
func SyntheticMarket(series Series, seed uint64) Series {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	market := make(Series, len(series))
	var cumulative float64
	for i, s := range series {
		r := s.Return*0.8 + (rng.Float64()-0.5)*0.01
		cumulative += r
		market[i] = ReturnSample{Date: s.Date, Return: r, CumulativeReturn: cumulative}
	}
	return market
}
