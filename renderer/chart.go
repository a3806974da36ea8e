package renderer

import (
	"errors"
	"fmt"

	"github.com/etnz/riskfolio"
	charts "github.com/vicanso/go-charts/v2"
)

// HistogramPNG renders bins as a bar chart in PNG.
func HistogramPNG(bins []riskfolio.HistogramBin) ([]byte, error) {
	return histogramChart(bins, charts.PNGTypeOption())
}

// HistogramSVG renders bins as a bar chart in SVG.
func HistogramSVG(bins []riskfolio.HistogramBin) ([]byte, error) {
	return histogramChart(bins, charts.SVGTypeOption())
}

func histogramChart(bins []riskfolio.HistogramBin, output charts.OptionFunc) ([]byte, error) {
	if len(bins) == 0 {
		return nil, errors.New("no histogram bins to chart")
	}
	values := make([]float64, len(bins))
	labels := make([]string, len(bins))
	for i, b := range bins {
		values[i] = b.Frequency
		labels[i] = fmt.Sprintf("%.2f", b.BinCenter)
	}

	p, err := charts.BarRender(
		[][]float64{values},
		output,
		charts.TitleTextOptionFunc("P&L Distribution", "frequency per bin"),
		charts.XAxisDataOptionFunc(labels),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(900),
		charts.HeightOptionFunc(500),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}
