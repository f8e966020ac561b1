package neartree_test

import (
	"testing"

	"github.com/katalvlaran/neartree"
	"github.com/katalvlaran/neartree/metric"
	"github.com/katalvlaran/neartree/resultset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_S1_LinearInts covers spec.md §8 S1: a 1-D integer tree
// holding 1..9.
func TestScenario_S1_LinearInts(t *testing.T) {
	tr, err := neartree.Create(1, neartree.NewConfig(neartree.KindInteger, metric.L2))
	require.NoError(t, err)
	for i := int64(1); i <= 9; i++ {
		require.NoError(t, tr.InsertImmediate([]int64{i}, nil))
	}

	near, err := tr.Nearest([]int64{18}, 1e9)
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, near.Point)

	far, err := tr.Farthest([]int64{18})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, far.Point)

	sink := resultset.NewSliceSink()
	require.NoError(t, tr.FindInSphere([]int64{0}, 100, sink))
	assert.Equal(t, 9, sink.Len())

	sink2 := resultset.NewSliceSink()
	require.NoError(t, tr.FindInSphere([]int64{1}, -100, sink2))
	assert.Equal(t, 0, sink2.Len())
}

// TestScenario_S2_HalvingDoubles covers spec.md §8 S2: a 1-D float tree
// holding 1.0, 0.5, 0.25, ... until the squared value underflows to 0.
func TestScenario_S2_HalvingDoubles(t *testing.T) {
	tr, err := neartree.Create(1, neartree.NewConfig(neartree.KindFloating, metric.L2))
	require.NoError(t, err)

	var lastPositive float64
	v := 1.0
	for v*v != 0 {
		require.NoError(t, tr.InsertImmediate([]float64{v}, nil))
		lastPositive = v
		v = v / 2
	}

	near, err := tr.Nearest([]float64{0.0}, 1e9)
	require.NoError(t, err)
	assert.InDelta(t, lastPositive, near.Point.([]float64)[0], 1e-12)

	far, err := tr.Farthest([]float64{100.0})
	require.NoError(t, err)
	assert.InDelta(t, lastPositive, far.Point.([]float64)[0], 1e-12)
}

// TestScenario_S3_SphereFromTop covers spec.md §8 S3: inserting 1.0..100.0
// and querying growing spheres from a probe just past the top.
func TestScenario_S3_SphereFromTop(t *testing.T) {
	tr, err := neartree.Create(1, neartree.NewConfig(neartree.KindFloating, metric.L2))
	require.NoError(t, err)
	for i := 1; i <= 100; i++ {
		require.NoError(t, tr.InsertImmediate([]float64{float64(i)}, nil))
	}

	for i := 1; i <= 100; i++ {
		sink := resultset.NewSliceSink()
		require.NoError(t, tr.FindInSphere([]float64{100.1}, float64(i)+0.05, sink))
		assert.Equalf(t, i, sink.Len(), "radius step %d", i)
	}
}

// TestScenario_S4_Annulus covers spec.md §8 S4: inserting 1..1000 and
// querying the annulus (100.1, 299.9) from the origin.
func TestScenario_S4_Annulus(t *testing.T) {
	tr, err := neartree.Create(1, neartree.NewConfig(neartree.KindFloating, metric.L2))
	require.NoError(t, err)
	for i := 1; i <= 1000; i++ {
		require.NoError(t, tr.InsertImmediate([]float64{float64(i)}, nil))
	}

	sink := resultset.NewSliceSink()
	require.NoError(t, tr.FindInAnnulus([]float64{0}, 100.1, 299.9, sink))
	require.Equal(t, 199, sink.Len())

	min := sink.Entries[0].Point.([]float64)[0]
	for _, e := range sink.Entries {
		if v := e.Point.([]float64)[0]; v < min {
			min = v
		}
	}
	assert.Equal(t, 101.0, min)
}

// TestScenario_S5_KNearestAndKFarthest covers spec.md §8 S5: inserting
// 1..100 and running bounded k-nearest/k-farthest queries.
func TestScenario_S5_KNearestAndKFarthest(t *testing.T) {
	tr, err := neartree.Create(1, neartree.NewConfig(neartree.KindFloating, metric.L2))
	require.NoError(t, err)
	for i := 1; i <= 100; i++ {
		require.NoError(t, tr.InsertImmediate([]float64{float64(i)}, nil))
	}

	near := resultset.NewSliceSink()
	require.NoError(t, tr.FindKNearest([]float64{50}, 13, 3.5, near))
	require.Equal(t, 7, near.Len())
	wantNear := map[float64]bool{47: true, 48: true, 49: true, 50: true, 51: true, 52: true, 53: true}
	for _, e := range near.Entries {
		assert.True(t, wantNear[e.Point.([]float64)[0]])
	}

	far := resultset.NewSliceSink()
	require.NoError(t, tr.FindKFarthest([]float64{2}, 7, 95, far))
	assert.Equal(t, 4, far.Len())
}

// TestScenario_S6_SphericalFourSphere covers spec.md §8 S6: a 4-D spherical
// tree holding the origin and, for j=1..9, a point on each of the four
// axes at distance j from the origin. The spherical metric projects every
// non-zero point onto the unit hypersphere before measuring angle, so all
// nine points along one axis collapse to a single direction; the origin
// alone normalizes to the degenerate all-zero direction (spec.md §4.1:
// a zero vector maps to +Inf against any other direction, and to 0 only
// against itself).
func TestScenario_S6_SphericalFourSphere(t *testing.T) {
	tr, err := neartree.Create(4, neartree.NewConfig(neartree.KindFloating, metric.Spherical))
	require.NoError(t, err)

	require.NoError(t, tr.InsertImmediate([]float64{0, 0, 0, 0}, "origin"))
	for j := 1; j <= 9; j++ {
		require.NoError(t, tr.InsertImmediate([]float64{float64(j), 0, 0, 0}, "x"))
		require.NoError(t, tr.InsertImmediate([]float64{0, float64(j), 0, 0}, "y"))
		require.NoError(t, tr.InsertImmediate([]float64{0, 0, float64(j), 0}, "z"))
		require.NoError(t, tr.InsertImmediate([]float64{0, 0, 0, float64(j)}, "w"))
	}

	near, err := tr.Nearest([]float64{0, 0, 0, 0}, 1e9)
	require.NoError(t, err)
	assert.Equal(t, "origin", near.Payload)

	// (0,0,0.7,0.71) leans further toward the w axis than the z axis, so
	// its angularly-nearest direction is the w axis, i.e. any (0,0,0,j).
	near2, err := tr.Nearest([]float64{0, 0, 0.7, 0.71}, 1e9)
	require.NoError(t, err)
	assert.Equal(t, "w", near2.Payload)
}
