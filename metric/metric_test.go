package metric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/neartree/metric"
	"github.com/stretchr/testify/assert"
)

func TestVector_L2(t *testing.T) {
	d, err := metric.Vector(metric.L2, []float64{0, 0}, []float64{3, 4}, 2)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, d)
}

func TestVector_L1(t *testing.T) {
	d, err := metric.Vector(metric.L1, []float64{0, 0}, []float64{3, 4}, 2)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, d)
}

func TestVector_LInf(t *testing.T) {
	d, err := metric.Vector(metric.LInf, []float64{0, 0}, []float64{3, 4}, 2)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, d)
}

func TestVector_DimensionMismatch(t *testing.T) {
	_, err := metric.Vector(metric.L2, []float64{0}, []float64{0, 1}, 2)
	assert.ErrorIs(t, err, metric.ErrDimensionMismatch)
}

func TestVector_UnsupportedKindForHamming(t *testing.T) {
	_, err := metric.Vector(metric.Hamming, []float64{0}, []float64{1}, 1)
	assert.ErrorIs(t, err, metric.ErrUnsupportedKind)
}

func TestVector_SphericalOrigin(t *testing.T) {
	// origin vs axis point: origin is identical to every tree's scenario S6
	d, err := metric.Vector(metric.Spherical, []float64{0, 0, 0, 0}, []float64{0, 0, 0, 1}, 4)
	assert.NoError(t, err)
	// normalizing the zero vector is undefined -> +Inf, never NaN.
	assert.True(t, math.IsInf(d, 1))
}

func TestVector_SphericalAxisPoints(t *testing.T) {
	// (0,0,0,1) vs (0,0,1,0): orthogonal unit vectors, angle = pi/2.
	d, err := metric.Vector(metric.Spherical, []float64{0, 0, 0, 1}, []float64{0, 0, 1, 0}, 4)
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi/2, d, 1e-9)
}

func TestVector_SphericalIdentical(t *testing.T) {
	d, err := metric.Vector(metric.Spherical, []float64{1, 2, 3}, []float64{2, 4, 6}, 3)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-9) // same direction, different magnitude
}

func TestString_Hamming(t *testing.T) {
	d, err := metric.String(metric.Hamming, "karolin", "kathrin", 7)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, d)
}

func TestString_HammingShortOperandsPadded(t *testing.T) {
	// "ab" padded to width 4 becomes "ab  "; differs from "abcd" at positions 2,3.
	d, err := metric.String(metric.Hamming, "ab", "abcd", 4)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, d)
}

func TestString_NonHammingKindRejected(t *testing.T) {
	_, err := metric.String(metric.L2, "ab", "cd", 2)
	assert.ErrorIs(t, err, metric.ErrUnsupportedKind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "L2", metric.L2.String())
	assert.Equal(t, "Hamming", metric.Hamming.String())
}
