package cmd

import (
	"context"
	"flag"

	"github.com/etnz/riskfolio/renderer"
	"github.com/google/subcommands"
)

type stressCmd struct {
	sourceFlags
}

func (*stressCmd) Name() string     { return "stress" }
func (*stressCmd) Synopsis() string { return "estimate the portfolio loss in historical crises" }
func (*stressCmd) Usage() string {
	return `rf stress [-f <file> | -values <file> | -url <url> | -synthetic] [-value <amount>] [-json]

  Applies the market drop of historical crisis scenarios to the current portfolio value.
`
}

func (c *stressCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := analyze(ctx, &c.sourceFlags)
	if status != subcommands.ExitSuccess {
		return status
	}
	if c.json {
		if err := printJSON(a.Stress); err != nil {
			return fail("Error encoding stress tests", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.StressMarkdown(a))
	return subcommands.ExitSuccess
}
