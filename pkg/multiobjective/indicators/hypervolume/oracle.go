package hypervolume

import (
	"sort"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
)

// Oracle computes the exact volume dominated by a point set and bounded by a
// reference point. It assumes minimization. Points that are not strictly
// better than the reference point in every objective enclose no volume and
// are ignored.
//
// An Oracle is immutable and safe for concurrent use.
type Oracle struct {
	ref []float64
}

// NewOracle creates an oracle for the given reference point.
func NewOracle(ref []float64) *Oracle {
	r := make([]float64, len(ref))
	copy(r, ref)
	return &Oracle{ref: r}
}

// Compute returns the hypervolume of points. Every point must have as many
// objectives as the reference point.
func (o *Oracle) Compute(points framework.ObjectiveMatrix) float64 {
	relevant := make([][]float64, 0, len(points))
	for _, p := range points {
		if strictlyInside(p, o.ref) {
			relevant = append(relevant, p)
		}
	}
	if len(relevant) == 0 {
		return 0
	}
	return sweep(relevant, o.ref, len(o.ref))
}

func strictlyInside(p, ref []float64) bool {
	for i := range ref {
		if p[i] >= ref[i] {
			return false
		}
	}
	return true
}

// sweep computes the volume of points restricted to their first d objectives.
// Higher dimensions are cut into slabs along objective d-1; each slab's
// cross-section is the (d-1)-dimensional volume of the points below it.
func sweep(points [][]float64, ref []float64, d int) float64 {
	switch d {
	case 1:
		best := ref[0]
		for _, p := range points {
			if p[0] < best {
				best = p[0]
			}
		}
		return ref[0] - best
	case 2:
		return sweep2D(points, ref)
	}

	axis := d - 1
	sorted := make([][]float64, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][axis] < sorted[j][axis]
	})

	volume := 0.0
	for i := range sorted {
		upper := ref[axis]
		if i+1 < len(sorted) {
			upper = sorted[i+1][axis]
		}
		depth := upper - sorted[i][axis]
		if depth == 0 {
			continue
		}
		volume += depth * sweep(sorted[:i+1], ref, axis)
	}
	return volume
}

// sweep2D sums the staircase formed by the points sorted on the first
// objective.
func sweep2D(points [][]float64, ref []float64) float64 {
	sorted := make([][]float64, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i][0] == sorted[j][0] {
			return sorted[i][1] < sorted[j][1]
		}
		return sorted[i][0] < sorted[j][0]
	})

	volume := 0.0
	height := ref[1]
	for i, p := range sorted {
		if p[1] < height {
			height = p[1]
		}
		right := ref[0]
		if i+1 < len(sorted) {
			right = sorted[i+1][0]
		}
		volume += (right - p[0]) * (ref[1] - height)
	}
	return volume
}
