package benchmarks

import (
	"math"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
)

const (
	DTLZ2Name = "DTLZ2"
)

var _ framework.Problem = &DTLZ2{}

// DTLZ2 has a spherical Pareto front: sum(f_i^2) = 1 in the positive orthant.
type DTLZ2 struct {
	numVars       int
	numObjectives int
}

func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	// Recommended: numVars = numObjectives + k - 1, where k = 10 for DTLZ2
	return &DTLZ2{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ2) Name() string {
	return DTLZ2Name
}

func (p *DTLZ2) NumObjectives() int {
	return p.numObjectives
}

func (p *DTLZ2) LowerBounds() []float64 {
	return constant(p.numVars, 0)
}

func (p *DTLZ2) UpperBounds() []float64 {
	return constant(p.numVars, 1)
}

func (p *DTLZ2) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		idx := i
		funcs[i] = func(x []float64) float64 {
			return p.objective(x, idx)
		}
	}
	return funcs
}

func (p *DTLZ2) g(x []float64) float64 {
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

func (p *DTLZ2) objective(x []float64, objIdx int) float64 {
	f := 1 + p.g(x)

	// Product of cos terms
	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= math.Cos(x[i] * math.Pi / 2)
	}

	// Last term is sin for all objectives except the first
	if objIdx > 0 {
		f *= math.Sin(x[p.numObjectives-objIdx-1] * math.Pi / 2)
	}

	return f
}

// TrueParetoFront samples the front for 2 and 3 objectives. Other objective
// counts return nil.
func (p *DTLZ2) TrueParetoFront(numPoints int) framework.ObjectiveMatrix {
	if p.numObjectives == 2 && numPoints >= 2 {
		points := make(framework.ObjectiveMatrix, numPoints)
		for i := 0; i < numPoints; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
			points[i] = framework.ObjectiveSpacePoint{
				math.Cos(theta),
				math.Sin(theta),
			}
		}
		return points
	}
	if p.numObjectives == 3 {
		sqrtN := int(math.Sqrt(float64(numPoints)))
		if sqrtN < 2 {
			return nil
		}
		points := make(framework.ObjectiveMatrix, 0, sqrtN*sqrtN)
		for i := 0; i < sqrtN; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(sqrtN-1)
			for j := 0; j < sqrtN; j++ {
				phi := (math.Pi / 2) * float64(j) / float64(sqrtN-1)
				points = append(points, framework.ObjectiveSpacePoint{
					math.Cos(theta) * math.Cos(phi),
					math.Sin(theta) * math.Cos(phi),
					math.Sin(phi),
				})
			}
		}
		return points
	}
	return nil
}
