package riskfolio

import (
	"math"
	"math/rand/v2"
)

// approx reports whether a and b are equal within a relative or absolute tolerance of 1e-9.
func approx(a, b float64) bool {
	const eps = 1e-9
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// randomReturns returns n daily returns between -5% and +5% from a seeded generator.
func randomReturns(seed uint64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	r := make([]float64, n)
	for i := range r {
		r[i] = (rng.Float64() - 0.5) * 0.1
	}
	return r
}
