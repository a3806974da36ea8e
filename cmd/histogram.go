package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/riskfolio"
	"github.com/etnz/riskfolio/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type histogramCmd struct {
	sourceFlags
	bins int
	pl   bool
	png  string
	svg  string
}

func (*histogramCmd) Name() string     { return "histogram" }
func (*histogramCmd) Synopsis() string { return "display the distribution of daily returns" }
func (*histogramCmd) Usage() string {
	return `rf histogram [-f <file> | -values <file> | -url <url> | -synthetic] [-bins <n>] [-pl] [-png <file>] [-svg <file>] [-json]

  Partitions the daily returns into equal width bins and displays the frequency of each bin.
  With -pl the bins are the daily profits and losses in currency instead. The distribution can
  also be saved as a bar chart.
`
}

func (c *histogramCmd) SetFlags(f *flag.FlagSet) {
	c.sourceFlags.SetFlags(f)
	f.IntVar(&c.bins, "bins", 0, "Number of bins, the configured bin count otherwise.")
	f.BoolVar(&c.pl, "pl", false, "Bin the daily profits and losses in currency instead of the returns.")
	f.StringVar(&c.png, "png", "", "Save the distribution chart as a PNG image to this file.")
	f.StringVar(&c.svg, "svg", "", "Save the distribution chart as an SVG image to this file.")
}

func (c *histogramCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration", err)
	}
	if c.bins != 0 {
		cfg.BinCount = c.bins
	}
	a, err := c.analyze(ctx, cfg)
	if err != nil {
		return fail("Error analyzing the return series", err)
	}
	bins := a.Histogram
	if c.pl {
		bins = a.PLHistogram
	}

	charts := []struct {
		filename string
		render   func([]riskfolio.HistogramBin) ([]byte, error)
	}{
		{c.png, renderer.HistogramPNG},
		{c.svg, renderer.HistogramSVG},
	}
	for _, chart := range charts {
		if chart.filename == "" {
			continue
		}
		b, err := chart.render(bins)
		if err != nil {
			return fail("Error rendering the chart", err)
		}
		if err := os.WriteFile(chart.filename, b, 0o644); err != nil {
			return fail("Error writing the chart", err)
		}
		log.Info().Str("file", chart.filename).Msg("chart saved")
	}

	if c.json {
		if err := printJSON(bins); err != nil {
			return fail("Error encoding histogram", err)
		}
		return subcommands.ExitSuccess
	}
	if c.pl {
		printMarkdown(renderer.PLHistogramMarkdown(a))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.HistogramMarkdown(a))
	return subcommands.ExitSuccess
}
