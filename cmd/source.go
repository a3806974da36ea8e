package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/riskfolio"
	"github.com/rs/zerolog/log"
)

// sourceFlags selects the return series to analyze and overrides the configuration.
//
// Zero values keep the configuration value.
type sourceFlags struct {
	file       string
	values     string
	url        string
	synthetic  bool
	market     string
	confidence float64
	horizon    int
	value      float64
	json       bool
}

func (s *sourceFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.file, "f", "", "JSONL file of return samples.")
	f.StringVar(&s.values, "values", "", "JSONL file of daily portfolio values, returns are derived from them.")
	f.StringVar(&s.url, "url", "", "URL of the historical portfolio endpoint, {days} is replaced by the window.")
	f.BoolVar(&s.synthetic, "synthetic", false, "Analyze a synthetic return series.")
	f.StringVar(&s.market, "market", "", "JSONL file of market return samples used for beta. A synthetic market is used otherwise.")
	f.Float64Var(&s.confidence, "c", 0, "Confidence level in (0,1), like 0.95.")
	f.IntVar(&s.horizon, "h", 0, "Time horizon in trading days.")
	f.Float64Var(&s.value, "value", 0, "Portfolio value, the latest value of the series otherwise.")
	f.BoolVar(&s.json, "json", false, "Print the result as JSON.")
}

// apply overrides cfg with the flags and validates the result.
func (s *sourceFlags) apply(cfg *riskfolio.Config) error {
	if s.confidence != 0 {
		cfg.ConfidenceLevel = s.confidence
	}
	if s.horizon != 0 {
		cfg.Horizon = s.horizon
	}
	if s.value != 0 {
		cfg.PortfolioValue = s.value
	}
	if s.file != "" || s.values != "" || s.url != "" || s.synthetic {
		cfg.Source.File, cfg.Source.Values, cfg.Source.URL = s.file, s.values, s.url
	}
	if s.market != "" {
		cfg.Source.Market = s.market
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", riskfolio.ErrInvalidOptions, err)
	}
	return nil
}

// provider returns the provider of the return series selected by cfg.
// A synthetic series is used when no source is configured.
func provider(cfg *riskfolio.Config) riskfolio.Provider {
	switch {
	case cfg.Source.File != "":
		return riskfolio.FileProvider{Filename: cfg.Source.File}
	case cfg.Source.Values != "":
		return riskfolio.ValueProvider{Filename: cfg.Source.Values}
	case cfg.Source.URL != "":
		return riskfolio.NewHTTPProvider(cfg.Source.URL, cfg.Source.Path)
	default:
		log.Info().Uint64("seed", cfg.Source.Seed).Msg("no return series source, using a synthetic series")
		return riskfolio.SyntheticProvider{InitialValue: cfg.PortfolioValue, Seed: cfg.Source.Seed}
	}
}

// analyze fetches the series and market selected by cfg and analyzes them.
func (s *sourceFlags) analyze(ctx context.Context, cfg *riskfolio.Config) (*riskfolio.Analysis, error) {
	if err := s.apply(cfg); err != nil {
		return nil, err
	}
	series, err := provider(cfg).Series(ctx, cfg.Window)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("samples", len(series)).Msg("return series loaded")

	var market riskfolio.Series
	if cfg.Source.Market != "" {
		market, err = riskfolio.FileProvider{Filename: cfg.Source.Market}.Series(ctx, cfg.Window)
		if err != nil {
			return nil, err
		}
	} else {
		market = riskfolio.SyntheticMarket(series, cfg.Source.Seed)
	}
	return riskfolio.Analyze(series, market, cfg.Options())
}
