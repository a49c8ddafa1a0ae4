package refdirs

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

func TestLatticeThreeObjectivesTwoSections(t *testing.T) {
	want := [][]float64{
		{1, 0, 0},
		{0.5, 0.5, 0},
		{0.5, 0, 0.5},
		{0, 1, 0},
		{0, 0.5, 0.5},
		{0, 0, 1},
	}
	got := Lattice(3, 2)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Lattice(3, 2) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6, NumDirections(3, 2))
}

func TestLatticeMatchesClosedForm(t *testing.T) {
	for nObj := 2; nObj <= 6; nObj++ {
		for s := 1; s <= 8; s++ {
			dirs := Lattice(nObj, s)
			assert.Equalf(t, NumDirections(nObj, s), len(dirs), "nObj=%d sections=%d", nObj, s)
		}
	}
}

func TestLatticeVectorsLieOnSimplex(t *testing.T) {
	for _, tc := range []struct{ nObj, sections int }{{3, 12}, {4, 7}, {5, 3}, {7, 2}} {
		for _, d := range Lattice(tc.nObj, tc.sections) {
			require.Len(t, d, tc.nObj)
			sum := 0.0
			for _, v := range d {
				assert.GreaterOrEqual(t, v, 0.0)
				sum += v
			}
			assert.InDelta(t, 1.0, sum, sumTolerance)
		}
	}
}

func TestLatticeDeterministic(t *testing.T) {
	assert.Equal(t, Lattice(4, 5), Lattice(4, 5))
}

func TestLatticeDegenerateInputs(t *testing.T) {
	assert.Equal(t, [][]float64{{1.0}}, Lattice(1, 0))
	assert.Equal(t, [][]float64{{1.0}}, Lattice(1, 9))
	assert.Equal(t, 1, NumDirections(1, 9))

	// C(nObj-1, 0) would be 1, but no vector of the zero-section level set
	// sums to 1, so the count follows the enumeration for every nSections >= 0.
	assert.Empty(t, Lattice(3, 0))
	assert.Equal(t, 0, NumDirections(3, 0))
	for nObj := 2; nObj <= 6; nObj++ {
		assert.Equalf(t, len(Lattice(nObj, 0)), NumDirections(nObj, 0), "nObj=%d", nObj)
	}

	assert.Empty(t, Lattice(3, -1))
	assert.Equal(t, 0, NumDirections(3, -1))
}

func TestLatticeManyObjectives(t *testing.T) {
	dirs := Lattice(15, 2)
	assert.Len(t, dirs, NumDirections(15, 2))
	assert.Equal(t, 120, len(dirs))
}

func TestFromNTwoObjectives(t *testing.T) {
	dirs, err := FromN(2, 5)
	require.NoError(t, err)
	require.Len(t, dirs, 5)

	want := [][]float64{
		{1, zeroEpsilon},
		{0.75, 0.25},
		{0.5, 0.5},
		{0.25, 0.75},
		{zeroEpsilon, 1},
	}
	if diff := cmp.Diff(want, dirs, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("FromN(2, 5) mismatch (-want +got):\n%s", diff)
	}
	for _, d := range dirs {
		assert.InDelta(t, 1.0, d[0]+d[1], 1e-6)
	}
}

func TestFromNTwoObjectivesSingleDirection(t *testing.T) {
	dirs, err := FromN(2, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, zeroEpsilon}}, dirs)
}

func TestFromNTooFewObjectives(t *testing.T) {
	for _, nObj := range []int{-1, 0, 1} {
		_, err := FromN(nObj, 10)
		assert.ErrorIs(t, err, ErrNoDecomposition)
	}
	_, err := FromN(3, 0)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestFromNUndershootsThenFillsUp(t *testing.T) {
	tests := []struct {
		name        string
		nObj, nRefs int
		latticeSize int
	}{
		// 11 lies between C(5,3)=10 and C(6,4)=15
		{name: "between resolutions", nObj: 3, nRefs: 11, latticeSize: 10},
		// 10 is reached exactly at 3 sections, the resolution before is used
		{name: "exact count still undershoots", nObj: 3, nRefs: 10, latticeSize: 6},
		{name: "four objectives", nObj: 4, nRefs: 30, latticeSize: 20},
		{name: "fewer directions than objectives", nObj: 5, nRefs: 4, latticeSize: 0},
		{name: "single direction", nObj: 3, nRefs: 1, latticeSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dirs, err := FromN(tt.nObj, tt.nRefs, seeded(7))
			require.NoError(t, err)
			assert.Len(t, dirs, tt.nRefs)

			noFill, err := FromN(tt.nObj, tt.nRefs, WithFillUp(false))
			require.NoError(t, err)
			assert.Len(t, noFill, tt.latticeSize)

			for i, d := range dirs {
				for _, v := range d {
					assert.NotZero(t, v)
				}
				if i < tt.latticeSize {
					assert.Equal(t, noFill[i], d)
				}
			}
		})
	}
}

// Fill-up directions are drawn from the unit hypercube and are not
// renormalized, so they generally do not sum to 1.
func TestFromNFillUpDirectionsAreNotNormalized(t *testing.T) {
	dirs, err := FromN(3, 100, seeded(42), WithMaxSections(3))
	require.NoError(t, err)
	require.Len(t, dirs, 100)

	offSimplex := 0
	for _, d := range dirs {
		sum := 0.0
		for _, v := range d {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
			sum += v
		}
		if sum < 1-sumTolerance || sum > 1+sumTolerance {
			offSimplex++
		}
	}
	assert.Positive(t, offSimplex)
}

func TestFromNReproducibleWithSeed(t *testing.T) {
	a, err := FromN(3, 50, seeded(1))
	require.NoError(t, err)
	b, err := FromN(3, 50, seeded(1))
	require.NoError(t, err)
	c, err := FromN(3, 50, seeded(2))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFromSections(t *testing.T) {
	dirs, err := FromSections(3, 4)
	require.NoError(t, err)
	assert.Len(t, dirs, 15)

	_, err = FromSections(0, 4)
	assert.ErrorIs(t, err, ErrNoDecomposition)
}

func TestCache(t *testing.T) {
	c := NewCache(gocache.NoExpiration, seeded(3))

	first, err := c.FromN(3, 12)
	require.NoError(t, err)
	require.Len(t, first, 12)
	assert.Equal(t, 1, c.Len())

	first[0][0] = -1

	second, err := c.FromN(3, 12)
	require.NoError(t, err)
	assert.NotEqual(t, -1.0, second[0][0])
	assert.Equal(t, first[1:], second[1:])
	assert.Equal(t, 1, c.Len())

	_, err = c.FromN(1, 12)
	assert.ErrorIs(t, err, ErrNoDecomposition)
	assert.Equal(t, 1, c.Len())
}

func TestCacheVariants(t *testing.T) {
	c := NewCache(gocache.NoExpiration)

	a, err := c.FromNVariant("seed=1", 3, 12, seeded(1))
	require.NoError(t, err)
	b, err := c.FromNVariant("seed=2", 3, 12, seeded(2))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, c.Len())

	// a cached set ignores the options of later calls
	again, err := c.FromNVariant("seed=1", 3, 12, seeded(2))
	require.NoError(t, err)
	assert.Equal(t, a, again)
	assert.Equal(t, 2, c.Len())

	want, err := FromN(3, 12, seeded(1))
	require.NoError(t, err)
	assert.Equal(t, want, a)
}
