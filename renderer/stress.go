package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/riskfolio"
	md "github.com/nao1215/markdown"
)

// StressMarkdown renders the stress test results of a.
func StressMarkdown(a *riskfolio.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stress Tests")
	doc.PlainText(fmt.Sprintf("Estimated impact of historical crises on a portfolio worth %s.", money(a, a.PortfolioValue)))
	writeStress(doc, a)

	return doc.String()
}

func writeStress(doc *md.Markdown, a *riskfolio.Analysis) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Scenario", "Market Drop", "Duration", "Volatility", "Estimated Loss", "Loss %"},
	}
	for _, r := range a.Stress {
		table.Rows = append(table.Rows, []string{
			r.Name,
			riskfolio.Pct(r.MarketDrop).SignedString(),
			fmt.Sprintf("%d days", r.Duration),
			fmt.Sprintf("x%.1f", r.VolatilityMultiplier),
			money(a, r.EstimatedLoss).Loss(),
			riskfolio.Percent(r.EstimatedLossPct).String(),
		})
	}
	doc.Table(table)
}
