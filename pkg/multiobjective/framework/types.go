package framework

import (
	"errors"
	"fmt"
)

// ErrRaggedMatrix is returned when the rows of an ObjectiveMatrix do not share
// the same number of objectives.
var ErrRaggedMatrix = errors.New("objective matrix rows have different lengths")

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func([]float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
// All objectives are minimized.
type ObjectiveSpacePoint []float64

// Clone returns a copy of the point.
func (p ObjectiveSpacePoint) Clone() ObjectiveSpacePoint {
	if p == nil {
		return nil
	}
	c := make(ObjectiveSpacePoint, len(p))
	copy(c, p)
	return c
}

// ObjectiveMatrix is an evaluated population or front, one point per row.
type ObjectiveMatrix []ObjectiveSpacePoint

// NumObjectives returns the dimension of the first row, or 0 for an empty matrix.
func (m ObjectiveMatrix) NumObjectives() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of the matrix.
func (m ObjectiveMatrix) Clone() ObjectiveMatrix {
	if m == nil {
		return nil
	}
	c := make(ObjectiveMatrix, len(m))
	for i, row := range m {
		c[i] = row.Clone()
	}
	return c
}

// Validate checks that every row is non-empty and has the same length.
func (m ObjectiveMatrix) Validate() error {
	n := m.NumObjectives()
	for i, row := range m {
		if len(row) == 0 || len(row) != n {
			return fmt.Errorf("row %d has %d objectives, want %d: %w", i, len(row), n, ErrRaggedMatrix)
		}
	}
	return nil
}

// Rows selects the given rows into a new matrix. The rows are copied.
func (m ObjectiveMatrix) Rows(indices []int) ObjectiveMatrix {
	out := make(ObjectiveMatrix, len(indices))
	for i, idx := range indices {
		out[i] = m[idx].Clone()
	}
	return out
}

// Problem describes a benchmark problem with a known Pareto front.
type Problem interface {
	Name() string
	NumObjectives() int

	LowerBounds() []float64
	UpperBounds() []float64

	ObjectiveFuncs() []ObjectiveFunc

	// TrueParetoFront samples numPoints points of the true front. Problems
	// that cannot sample it return nil.
	TrueParetoFront(numPoints int) ObjectiveMatrix
}

// Evaluate computes every objective of the problem for the decision vector x.
func Evaluate(p Problem, x []float64) ObjectiveSpacePoint {
	funcs := p.ObjectiveFuncs()
	point := make(ObjectiveSpacePoint, len(funcs))
	for i, f := range funcs {
		point[i] = f(x)
	}
	return point
}

// Indicator describes a performance indicator scoring a whole front.
type Indicator interface {
	Name() string
	Evaluate(F ObjectiveMatrix) (float64, error)
}
