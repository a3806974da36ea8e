package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/riskfolio"
	md "github.com/nao1215/markdown"
)

// MetricsMarkdown renders the risk metrics of a.
func MetricsMarkdown(a *riskfolio.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Risk Metrics")
	writeSummary(doc, a)
	writeMetrics(doc, a)

	return doc.String()
}

func writeMetrics(doc *md.Markdown, a *riskfolio.Analysis) {
	m := a.Metrics
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"VaR 95%", money(a, m.VaR95).Loss()},
			{"VaR 99%", money(a, m.VaR99).Loss()},
			{"Expected Shortfall 95%", money(a, m.ExpectedShortfall95).Loss()},
			{"Expected Shortfall 99%", money(a, m.ExpectedShortfall99).Loss()},
		},
	}
	if c := a.Options.ConfidenceLevel; c != 0.95 && c != 0.99 {
		table.Rows = append(table.Rows,
			[]string{md.Bold("VaR " + level(c)), md.Bold(money(a, a.VaR).Loss())},
			[]string{md.Bold("Expected Shortfall " + level(c)), md.Bold(money(a, a.ExpectedShortfall).Loss())},
		)
	}
	table.Rows = append(table.Rows,
		[]string{"Beta", fmt.Sprintf("%.2f", m.Beta)},
		[]string{"Sharpe Ratio", fmt.Sprintf("%.2f", m.SharpeRatio)},
		[]string{"Max Drawdown", riskfolio.Pct(m.MaxDrawdown).String()},
		[]string{"Volatility (annualized)", riskfolio.Pct(m.Volatility).String()},
	)
	doc.Table(table)
}
