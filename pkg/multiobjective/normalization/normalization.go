// Package normalization rescales objective vectors between an ideal and a
// nadir point.
package normalization

import (
	"gonum.org/v1/gonum/floats"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
)

// DeriveIdealNadir returns the per-objective minimum and maximum of pf.
// Explicit ideal or nadir values take precedence over the derived ones.
// Without pf, the result is whatever was passed in, possibly nil.
func DeriveIdealNadir(pf framework.ObjectiveMatrix, ideal, nadir []float64) ([]float64, []float64) {
	if len(pf) > 0 {
		if ideal == nil {
			ideal = columnReduce(pf, floats.Min)
		}
		if nadir == nil {
			nadir = columnReduce(pf, floats.Max)
		}
	}
	return clone(ideal), clone(nadir)
}

func columnReduce(pf framework.ObjectiveMatrix, reduce func([]float64) float64) []float64 {
	n := pf.NumObjectives()
	out := make([]float64, n)
	col := make([]float64, len(pf))
	for j := 0; j < n; j++ {
		for i, row := range pf {
			col[i] = row[j]
		}
		out[j] = reduce(col)
	}
	return out
}

// Normalization is the affine transform (x - ideal) / (nadir - ideal).
// A nil ideal disables the shift and a nil nadir disables the scaling.
// Objectives whose range is zero are shifted only.
type Normalization struct {
	ideal []float64
	scale []float64
}

// New builds the transform for the given bounds.
func New(ideal, nadir []float64) *Normalization {
	n := &Normalization{ideal: clone(ideal)}
	if nadir == nil {
		return n
	}
	n.scale = make([]float64, len(nadir))
	for j := range nadir {
		lo := 0.0
		if ideal != nil {
			lo = ideal[j]
		}
		n.scale[j] = nadir[j] - lo
		if n.scale[j] == 0 {
			n.scale[j] = 1
		}
	}
	return n
}

// Forward returns the normalized copy of x.
func (n *Normalization) Forward(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)
	if n.ideal != nil {
		floats.Sub(out, n.ideal)
	}
	if n.scale != nil {
		floats.Div(out, n.scale)
	}
	return out
}

// ForwardMatrix normalizes every row of F into a new matrix.
func (n *Normalization) ForwardMatrix(F framework.ObjectiveMatrix) framework.ObjectiveMatrix {
	out := make(framework.ObjectiveMatrix, len(F))
	for i, row := range F {
		out[i] = n.Forward(row)
	}
	return out
}

// Backward maps a normalized vector back into the original objective space.
func (n *Normalization) Backward(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)
	if n.scale != nil {
		floats.Mul(out, n.scale)
	}
	if n.ideal != nil {
		floats.Add(out, n.ideal)
	}
	return out
}

// IsIdentity reports whether Forward leaves vectors unchanged.
func (n *Normalization) IsIdentity() bool {
	return n.ideal == nil && n.scale == nil
}

func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
