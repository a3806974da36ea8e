package riskfolio

import "testing"

func TestStressTest(t *testing.T) {
	results := StressTest(10000, []float64{0.01, -0.02})
	wantLoss := []float64{3700, 3400, 2000, 1000}
	wantPct := []float64{37, 34, 20, 10}
	if len(results) != len(wantLoss) {
		t.Fatalf("StressTest() returned %d results want %d", len(results), len(wantLoss))
	}
	for i, r := range results {
		if r.Name != StressScenarios[i].Name {
			t.Errorf("StressTest()[%d].Name = %q want %q", i, r.Name, StressScenarios[i].Name)
		}
		if !approx(r.EstimatedLoss, wantLoss[i]) {
			t.Errorf("StressTest()[%d].EstimatedLoss = %v want %v", i, r.EstimatedLoss, wantLoss[i])
		}
		if !approx(r.EstimatedLossPct, wantPct[i]) {
			t.Errorf("StressTest()[%d].EstimatedLossPct = %v want %v", i, r.EstimatedLossPct, wantPct[i])
		}
	}

	wantDuration := []int{252, 30, 60, 1}
	for i, s := range StressScenarios {
		if s.Duration != wantDuration[i] {
			t.Errorf("StressScenarios[%d].Duration = %v want %v", i, s.Duration, wantDuration[i])
		}
		if s.MarketDrop >= 0 {
			t.Errorf("StressScenarios[%d].MarketDrop = %v want a negative drop", i, s.MarketDrop)
		}
	}
}

func TestStressTest_IgnoresReturns(t *testing.T) {
	a := StressTest(5000, nil)
	b := StressTest(5000, randomReturns(3, 100))
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("StressTest()[%d] depends on returns: %v != %v", i, a[i], b[i])
		}
	}
	if zero := StressTest(0, nil); zero[0].EstimatedLoss != 0 {
		t.Errorf("StressTest(0)[0].EstimatedLoss = %v want 0", zero[0].EstimatedLoss)
	}
}
