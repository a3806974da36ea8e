// Package cmd implements the rf command line application to analyze the risk of a portfolio.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/riskfolio"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range analysisCommands() {
		c.Register(cmd, "analysis")
	}
	c.Register(&generateCmd{}, "series")
	c.Register(&topicCmd{}, "documentation")
}

// analysisCommands returns a new instance of every command analyzing a return series.
func analysisCommands() []subcommands.Command {
	return []subcommands.Command{
		&metricsCmd{},
		&stressCmd{},
		&histogramCmd{},
		&reportCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "riskfolio.yaml", "Path to the YAML configuration file. Defaults apply if it does not exist.")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Enable verbose logging.")

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// loadConfig reads the configuration file selected by the -config flag.
func loadConfig() (*riskfolio.Config, error) {
	cfg, err := riskfolio.LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("config", *configFile).Float64("confidence", cfg.ConfidenceLevel).Int("horizon", cfg.Horizon).Msg("configuration loaded")
	return cfg, nil
}

// fail prints err and returns the matching exit status.
func fail(msg string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	if errors.Is(err, riskfolio.ErrInvalidOptions) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// analyze runs the analysis selected by the source flags.
func analyze(ctx context.Context, s *sourceFlags) (*riskfolio.Analysis, subcommands.ExitStatus) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fail("Error loading configuration", err)
	}
	a, err := s.analyze(ctx, cfg)
	if err != nil {
		return nil, fail("Error analyzing the return series", err)
	}
	return a, subcommands.ExitSuccess
}
