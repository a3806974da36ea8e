package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/riskfolio"
	"github.com/etnz/riskfolio/date"
	"github.com/google/subcommands"
)

// generateCmd holds the flags for the 'generate' subcommand.
type generateCmd struct {
	days   int
	seed   uint64
	value  float64
	end    string
	output string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate a synthetic return series" }
func (*generateCmd) Usage() string {
	return `rf generate [-days <n>] [-seed <n>] [-value <amount>] [-end <date>] [-o <file>]

  Writes a synthetic return series as JSONL, one sample per trading day. The same seed always
  generates the same series.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", riskfolio.TradingDaysPerYear, "Number of trading days to generate.")
	f.Uint64Var(&c.seed, "seed", 1, "Seed of the generator.")
	f.Float64Var(&c.value, "value", riskfolio.FallbackPortfolioValue, "Initial portfolio value.")
	f.StringVar(&c.end, "end", "", "Last day of the series, as YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.output, "o", "", "Output file, stdout if empty.")
}

func (c *generateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 1 {
		fmt.Fprintf(os.Stderr, "Error: -days must be positive, got %d\n", c.days)
		return subcommands.ExitUsageError
	}
	p := riskfolio.SyntheticProvider{InitialValue: c.value, Seed: c.seed}
	if c.end != "" {
		end, err := date.Parse(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		p.End = end
	}

	series, err := p.Series(ctx, c.days)
	if err != nil {
		return fail("Error generating the series", err)
	}

	w := stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return fail("Error creating output file", err)
		}
		defer file.Close()
		w = file
	}
	if err := riskfolio.Encode(w, series); err != nil {
		return fail("Error writing the series", err)
	}
	return subcommands.ExitSuccess
}
