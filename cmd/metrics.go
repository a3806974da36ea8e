package cmd

import (
	"context"
	"flag"

	"github.com/etnz/riskfolio/renderer"
	"github.com/google/subcommands"
)

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct {
	sourceFlags
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "display the risk metrics of a portfolio" }
func (*metricsCmd) Usage() string {
	return `rf metrics [-f <file> | -values <file> | -url <url> | -synthetic] [-c <level>] [-h <days>] [-value <amount>] [-market <file>] [-json]

  Displays the Value at Risk and Expected Shortfall at 95% and 99%, the beta, the Sharpe ratio,
  the maximum drawdown and the annualized volatility of the portfolio.
`
}

func (c *metricsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := analyze(ctx, &c.sourceFlags)
	if status != subcommands.ExitSuccess {
		return status
	}
	if c.json {
		if err := printJSON(a.Metrics); err != nil {
			return fail("Error encoding metrics", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.MetricsMarkdown(a))
	return subcommands.ExitSuccess
}
