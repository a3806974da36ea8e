package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/riskfolio"
	md "github.com/nao1215/markdown"
)

// barWidth is the length of the bar of the most frequent bin.
const barWidth = 30

// HistogramMarkdown renders the returns distribution of a.
func HistogramMarkdown(a *riskfolio.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("P&L Distribution")
	doc.PlainText(fmt.Sprintf("Daily returns of %d trading days in %d bins.", a.Samples, len(a.Histogram)))
	writeHistogram(doc, a.Histogram)

	return doc.String()
}

// PLHistogramMarkdown renders the distribution of daily profits and losses of a, in currency.
func PLHistogramMarkdown(a *riskfolio.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily P&L Distribution")
	doc.PlainText(fmt.Sprintf("Daily profits and losses of a portfolio worth %s over %d trading days.", money(a, a.PortfolioValue), a.Samples))

	var highest int
	for _, b := range a.PLHistogram {
		highest = max(highest, b.Count)
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"P&L", "Count", ""},
	}
	for _, b := range a.PLHistogram {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%s to %s", money(a, b.BinStart), money(a, b.BinEnd)),
			fmt.Sprintf("%d", b.Count),
			bar(float64(b.Count), float64(highest)),
		})
	}
	doc.Table(table)

	return doc.String()
}

// bar returns a bar proportional to v, highest being barWidth long.
func bar(v, highest float64) string {
	if highest <= 0 {
		return ""
	}
	return strings.Repeat("█", int(v/highest*barWidth+0.5))
}

func writeHistogram(doc *md.Markdown, bins []riskfolio.HistogramBin) {
	var highest float64
	for _, b := range bins {
		highest = max(highest, b.Frequency)
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Return", "Count", "Frequency", ""},
	}
	for _, b := range bins {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%+.2f%% to %+.2f%%", b.BinStart, b.BinEnd),
			fmt.Sprintf("%d", b.Count),
			riskfolio.Percent(b.Frequency).String(),
			bar(b.Frequency, highest),
		})
	}
	doc.Table(table)
}
