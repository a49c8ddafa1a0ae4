// Package refdirs generates reference directions on the unit simplex for
// decomposition-based multi-objective algorithms.
package refdirs

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
)

const (
	// DefaultMaxSections bounds the resolution search of FromN.
	DefaultMaxSections = 100

	// zeroEpsilon replaces exact zero coordinates so that no direction has a
	// zero weight.
	zeroEpsilon = 0.00000001
)

var (
	// ErrNoDecomposition is returned when fewer than 2 objectives are requested.
	ErrNoDecomposition = errors.New("no decomposition possible with fewer than 2 objectives")
	// ErrInvalidCount is returned for a non-positive number of directions.
	ErrInvalidCount = errors.New("number of reference directions must be positive")
)

type options struct {
	maxSections int
	fillUp      bool
	rng         *rand.Rand
	logger      logr.Logger
}

// Option configures FromN.
type Option func(*options)

// WithMaxSections sets the exclusive upper bound of the resolution search.
func WithMaxSections(n int) Option {
	return func(o *options) {
		o.maxSections = n
	}
}

// WithFillUp controls whether random directions are appended when the
// lattice provides fewer directions than requested.
func WithFillUp(fillUp bool) Option {
	return func(o *options) {
		o.fillUp = fillUp
	}
}

// WithRand sets the random source used for the fill-up directions.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLogger sets the logger.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		maxSections: DefaultMaxSections,
		fillUp:      true,
		logger:      klog.Background(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// FromN returns reference directions for nObj objectives whose count is as
// close to nRefs as the simplex lattice allows.
//
// With 2 objectives exactly nRefs evenly spaced directions are returned. With
// more objectives the densest lattice holding fewer than nRefs points is used,
// and the remainder is filled with vectors drawn uniformly from [0,1)^nObj
// unless fill-up is disabled. Fill-up vectors are not projected onto the
// simplex, so their coordinates do not sum to 1.
//
// Exact zero coordinates in the result are replaced with 1e-8.
func FromN(nObj, nRefs int, opts ...Option) ([][]float64, error) {
	if nObj < 2 {
		return nil, fmt.Errorf("%d objectives: %w", nObj, ErrNoDecomposition)
	}
	if nRefs < 1 {
		return nil, fmt.Errorf("%d directions: %w", nRefs, ErrInvalidCount)
	}

	o := newOptions(opts)
	logger := o.logger.WithValues("objectives", nObj, "directions", nRefs)

	var dirs [][]float64
	if nObj == 2 {
		dirs = biObjective(nRefs)
	} else {
		s := resolution(nObj, nRefs, o.maxSections)
		logger.V(5).Info("selected lattice resolution", "sections", s, "latticeSize", NumDirections(nObj, s))
		dirs = Lattice(nObj, s)
	}

	if o.fillUp && len(dirs) < nRefs {
		logger.V(5).Info("filling up with random directions", "count", nRefs-len(dirs))
		for len(dirs) < nRefs {
			v := make([]float64, nObj)
			for j := range v {
				v[j] = o.rng.Float64()
			}
			dirs = append(dirs, v)
		}
	}

	for _, d := range dirs {
		for j := range d {
			if d[j] == 0 {
				d[j] = zeroEpsilon
			}
		}
	}

	return dirs, nil
}

// FromSections returns the raw simplex lattice with nSections divisions.
func FromSections(nObj, nSections int) ([][]float64, error) {
	if nObj < 1 {
		return nil, fmt.Errorf("%d objectives: %w", nObj, ErrNoDecomposition)
	}
	return Lattice(nObj, nSections), nil
}

// biObjective spaces nRefs directions along the 1-simplex, from (1,0) to (0,1).
func biObjective(nRefs int) [][]float64 {
	first := make([]float64, nRefs)
	if nRefs == 1 {
		first[0] = 1
	} else {
		floats.Span(first, 1, 0)
	}
	dirs := make([][]float64, nRefs)
	for i, w := range first {
		dirs[i] = []float64{w, 1 - w}
	}
	return dirs
}

// resolution finds the first number of sections in [0, maxSections) whose
// lattice holds at least nRefs points and returns the one before it. When no
// resolution reaches nRefs the search index is 0, giving -1 and an empty
// lattice.
func resolution(nObj, nRefs, maxSections int) int {
	idx := 0
	for s := 0; s < maxSections; s++ {
		if NumDirections(nObj, s) >= nRefs {
			idx = s
			break
		}
	}
	return idx - 1
}
