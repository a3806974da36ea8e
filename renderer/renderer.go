// Package renderer formats risk analyses as markdown reports and charts.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/riskfolio"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the metrics, the stress tests and the P&L distribution of a in a single
// document.
func ReportMarkdown(a *riskfolio.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Risk Report")
	writeSummary(doc, a)

	doc.H2("Risk Metrics")
	writeMetrics(doc, a)

	doc.H2("Stress Tests")
	writeStress(doc, a)

	doc.H2("P&L Distribution")
	writeHistogram(doc, a.Histogram)

	return doc.String()
}

// writeSummary writes the parameters the analysis was computed with.
func writeSummary(doc *md.Markdown, a *riskfolio.Analysis) {
	days := "day"
	if a.Options.Horizon > 1 {
		days = "days"
	}
	doc.PlainText(fmt.Sprintf("Analysis of %d trading days for a portfolio worth %s, at %s confidence over %d %s.",
		a.Samples,
		money(a, a.PortfolioValue),
		level(a.Options.ConfidenceLevel),
		a.Options.Horizon,
		days,
	))
}

func money(a *riskfolio.Analysis, v float64) riskfolio.Money { return riskfolio.M(v, a.Currency) }

// level formats a confidence level like "95%" or "97.5%".
func level(c float64) string {
	return fmt.Sprintf("%.4g%%", c*100)
}
