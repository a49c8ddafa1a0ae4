package refdirs

import (
	"gonum.org/v1/gonum/stat/combin"
)

const (
	// sumSlack is how far a partial sum may exceed 1 before it is pruned.
	sumSlack = 1.0001
	// sumTolerance is the distance to 1 a complete vector's sum must stay within.
	sumTolerance = 0.0001
)

// Lattice enumerates the simplex-lattice (Das-Dennis) points with nSections
// divisions per objective. Coordinates are taken from {1, (s-1)/s, ..., 0},
// tried in that order at every position, and a vector is kept when its
// coordinates sum to 1. The order is deterministic for fixed inputs.
func Lattice(nObj, nSections int) [][]float64 {
	if nObj == 1 {
		return [][]float64{{1.0}}
	}
	if nObj < 1 || nSections < 0 {
		return nil
	}

	levels := sections(nSections)

	// frame is one position of the depth-first walk: the prefix sum up to it
	// and the next level to try at it.
	type frame struct {
		sum  float64
		next int
	}

	var result [][]float64
	prefix := make([]float64, nObj)
	stack := make([]frame, 1, nObj+1)

	for len(stack) > 0 {
		depth := len(stack) - 1
		top := &stack[depth]

		if top.sum > sumSlack {
			stack = stack[:depth]
			continue
		}
		if depth == nObj {
			if 1.0-top.sum < sumTolerance {
				v := make([]float64, nObj)
				copy(v, prefix)
				result = append(result, v)
			}
			stack = stack[:depth]
			continue
		}
		if top.next >= len(levels) {
			stack = stack[:depth]
			continue
		}

		e := levels[top.next]
		top.next++
		prefix[depth] = e
		stack = append(stack, frame{sum: top.sum + e})
	}

	return result
}

// sections returns n+1 evenly spaced levels from 1 down to 0.
func sections(n int) []float64 {
	if n == 0 {
		return []float64{0}
	}
	levels := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		levels[i] = float64(n-i) / float64(n)
	}
	return levels
}

// NumDirections returns how many vectors Lattice produces for the same
// arguments without enumerating them: C(nObj+nSections-1, nSections).
// A lattice with zero sections holds no vector that sums to 1 when nObj > 1,
// so 0 is returned for it.
func NumDirections(nObj, nSections int) int {
	if nObj == 1 {
		return 1
	}
	if nObj < 1 || nSections < 1 {
		return 0
	}
	return combin.Binomial(nObj+nSections-1, nSections)
}
