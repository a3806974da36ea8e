package cmd

import (
	"context"
	"flag"

	"github.com/etnz/riskfolio/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	sourceFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full risk report of a portfolio" }
func (*reportCmd) Usage() string {
	return `rf report [-f <file> | -values <file> | -url <url> | -synthetic] [-c <level>] [-h <days>] [-value <amount>] [-market <file>] [-json]

  Displays the risk metrics, the stress tests and the returns distribution in a single report.
`
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := analyze(ctx, &c.sourceFlags)
	if status != subcommands.ExitSuccess {
		return status
	}
	if c.json {
		if err := printJSON(a); err != nil {
			return fail("Error encoding the report", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ReportMarkdown(a))
	return subcommands.ExitSuccess
}
