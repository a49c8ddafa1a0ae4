package framework

import "sort"

// NonDominatedSort performs non-dominated sorting on the given points and
// returns the fronts as row indices. Indices inside a front are ascending.
func NonDominatedSort(points ObjectiveMatrix) [][]int {
	var fronts [][]int
	if len(points) == 0 {
		return fronts
	}

	dominated := make([][]int, len(points))
	domCount := make([]int, len(points))

	// Calculate domination for each point
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if Dominates(points[i], points[j]) {
				dominated[i] = append(dominated[i], j)
				domCount[j]++
			} else if Dominates(points[j], points[i]) {
				dominated[j] = append(dominated[j], i)
				domCount[i]++
			}
		}
	}

	// Find first front
	currentFront := []int{}
	for i := range points {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}

	// Find subsequent fronts
	for len(currentFront) > 0 {
		fronts = append(fronts, currentFront)
		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		sort.Ints(nextFront)
		currentFront = nextFront
	}

	return fronts
}

// FindNonDominated returns the indices of the rows of F that no other row
// dominates, in ascending order. Duplicated rows are all kept.
func FindNonDominated(F ObjectiveMatrix) []int {
	out := make([]int, 0, len(F))
	for i := range F {
		dominated := false
		for j := range F {
			if i != j && Dominates(F[j], F[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, i)
		}
	}
	return out
}

// Dominates checks if point a dominates point b: a is no worse in every
// objective and strictly better in at least one.
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// WeaklyDominates checks if a is no worse than b in every objective.
func WeaklyDominates(a, b ObjectiveSpacePoint) bool {
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}
