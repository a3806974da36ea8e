package riskfolio

import (
	"math"
	"testing"
)

func TestBeta(t *testing.T) {
	market := []float64{0.01, -0.02, 0.03, 0.005, -0.01}
	double := make([]float64, len(market))
	for i, m := range market {
		double[i] = 2 * m
	}
	tests := []struct {
		name              string
		portfolio, market []float64
		want              float64
	}{
		{"empty", nil, nil, 1},
		{"length mismatch", []float64{0.01, 0.02}, []float64{0.01}, 1},
		{"single observation", []float64{0.01}, []float64{0.02}, 1},
		{"flat market", []float64{0.01, 0.02, 0.03}, []float64{0.25, 0.25, 0.25}, 1},
		{"market itself", market, market, 1},
		{"leveraged twice", double, market, 2},
		{"uncorrelated", []float64{0.01, 0.01, 0.01, 0.01}, []float64{0.01, -0.01, 0.01, -0.01}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Beta(tt.portfolio, tt.market); !approx(got, tt.want) {
				t.Errorf("Beta(%v, %v) = %v want %v", tt.portfolio, tt.market, got, tt.want)
			}
		})
	}
}

func TestSharpeRatio(t *testing.T) {
	returns := []float64{0.01, -0.01}
	// mean is 0, sample variance is 0.0002.
	want := (0 - DefaultRiskFreeRate) / math.Sqrt(0.0002*252)
	if got := SharpeRatio(returns, DefaultRiskFreeRate); !approx(got, want) {
		t.Errorf("SharpeRatio(%v) = %v want %v", returns, got, want)
	}

	returns = []float64{0.002, 0.001, -0.0005, 0.0015}
	m := (0.002 + 0.001 - 0.0005 + 0.0015) / 4
	var v float64
	for _, r := range returns {
		v += (r - m) * (r - m)
	}
	v /= 3
	want = (math.Pow(1+m, 252) - 1 - 0.03) / math.Sqrt(v*252)
	if got := SharpeRatio(returns, 0.03); !approx(got, want) {
		t.Errorf("SharpeRatio(%v, 0.03) = %v want %v", returns, got, want)
	}

	for _, returns := range [][]float64{nil, {0.01}, {0.25, 0.25, 0.25}} {
		if got := SharpeRatio(returns, DefaultRiskFreeRate); got != 0 {
			t.Errorf("SharpeRatio(%v) = %v want 0", returns, got)
		}
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name       string
		cumulative []float64
		want       float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.1}, 0},
		{"always up", []float64{0, 0.1, 0.2, 0.3}, 0},
		{"dip then new peak", []float64{0.1, 0.2, 0.15, 0.3}, 0.05 / 1.2},
		{"deeper dip later", []float64{0.1, 0.2, 0.15, 0.3, 0.0}, 0.3 / 1.3},
		{"below start", []float64{0, -0.5}, 0.5},
		{"flat", []float64{0.1, 0.1, 0.1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxDrawdown(tt.cumulative)
			if !approx(got, tt.want) {
				t.Errorf("MaxDrawdown(%v) = %v want %v", tt.cumulative, got, tt.want)
			}
			if got < 0 {
				t.Errorf("MaxDrawdown(%v) = %v is negative", tt.cumulative, got)
			}
		})
	}
}

func TestVolatility(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.02}, 0},
		{"constant", []float64{0.5, 0.5, 0.5, 0.5}, 0},
		{"symmetric", []float64{0.01, -0.01}, math.Sqrt(0.0002 * 252)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Volatility(tt.returns); !approx(got, tt.want) {
				t.Errorf("Volatility(%v) = %v want %v", tt.returns, got, tt.want)
			}
		})
	}
}
