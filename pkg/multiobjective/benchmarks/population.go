package benchmarks

import (
	"math/rand/v2"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
)

// RandomPopulation evaluates popSize decision vectors drawn uniformly within
// the problem bounds.
func RandomPopulation(p framework.Problem, popSize int, rng *rand.Rand) framework.ObjectiveMatrix {
	lower, upper := p.LowerBounds(), p.UpperBounds()
	population := make(framework.ObjectiveMatrix, popSize)
	for i := 0; i < popSize; i++ {
		vars := make([]float64, len(lower))
		for j := range vars {
			vars[j] = lower[j] + rng.Float64()*(upper[j]-lower[j])
		}
		population[i] = framework.Evaluate(p, vars)
	}
	return population
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
