package riskfolio

import (
	"math"
	"testing"

	"github.com/etnz/riskfolio/date"
)

func TestNewSeries(t *testing.T) {
	h := new(date.History[float64])
	h.Append(date.New(2025, 7, 2), 110).Append(date.New(2025, 7, 1), 100).Append(date.New(2025, 7, 3), 99)

	s := NewSeries(h)
	wantReturns := []float64{0, 0.1, -0.1}
	wantCumulative := []float64{0, 0.1, 0}
	if len(s) != 3 {
		t.Fatalf("len(NewSeries()) = %v want 3", len(s))
	}
	for i, sample := range s {
		if !approx(sample.Return, wantReturns[i]) {
			t.Errorf("NewSeries()[%d].Return = %v want %v", i, sample.Return, wantReturns[i])
		}
		if !approx(sample.CumulativeReturn, wantCumulative[i]) {
			t.Errorf("NewSeries()[%d].CumulativeReturn = %v want %v", i, sample.CumulativeReturn, wantCumulative[i])
		}
	}
	if s[0].Date != date.New(2025, 7, 1) || s[0].PortfolioValue != 100 {
		t.Errorf("NewSeries()[0] = %v want the 2025-07-01 value 100", s[0])
	}
}

func TestNewSeries_NonPositiveValue(t *testing.T) {
	h := new(date.History[float64])
	h.Append(date.New(2025, 7, 1), 0).Append(date.New(2025, 7, 2), 100)
	s := NewSeries(h)
	if s[1].Return != 0 {
		t.Errorf("return after a zero value = %v want 0", s[1].Return)
	}
}

func TestSeriesClean(t *testing.T) {
	s := Series{
		{Return: 0.01, CumulativeReturn: 0.01},
		{Return: math.NaN(), CumulativeReturn: 0.01},
		{Return: 0.02, CumulativeReturn: math.Inf(1)},
		{Return: -0.01, CumulativeReturn: 0.0, PortfolioValue: math.Inf(-1)},
		{Return: -0.01, CumulativeReturn: 0.0},
	}
	clean := s.Clean()
	if len(clean) != 2 {
		t.Fatalf("len(Clean()) = %v want 2", len(clean))
	}
	if got := clean.Returns(); got[0] != 0.01 || got[1] != -0.01 {
		t.Errorf("Clean().Returns() = %v want [0.01 -0.01]", got)
	}
	if len(s) != 5 {
		t.Errorf("Clean() modified the series")
	}
}

func TestFinite(t *testing.T) {
	got := Finite([]float64{1, math.NaN(), 2, math.Inf(1), math.Inf(-1), 3})
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("Finite() = %v want [1 2 3]", got)
	}
}

func TestSeriesTail(t *testing.T) {
	s := make(Series, 10)
	for i := range s {
		s[i].Return = float64(i)
	}
	tests := []struct {
		n, wantLen int
		wantFirst  float64
	}{
		{3, 3, 7},
		{10, 10, 0},
		{20, 10, 0},
		{0, 10, 0},
	}
	for _, tt := range tests {
		got := s.Tail(tt.n)
		if len(got) != tt.wantLen || got[0].Return != tt.wantFirst {
			t.Errorf("Tail(%d) = %d samples from %v want %d samples from %v", tt.n, len(got), got[0].Return, tt.wantLen, tt.wantFirst)
		}
	}
}
