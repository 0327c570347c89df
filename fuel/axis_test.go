package fuel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAxis_TooFewBreakpoints(t *testing.T) {
	_, err := NewAxis([]int{1000})
	assert.ErrorIs(t, err, ErrAxisLen)

	_, err = NewAxis(nil)
	assert.ErrorIs(t, err, ErrAxisLen)
}

func TestNewAxis_NotStrictlyIncreasing(t *testing.T) {
	_, err := NewAxis([]int{1000, 1000, 2000})
	assert.ErrorIs(t, err, ErrAxisNotAscending)

	_, err = NewAxis([]int{1000, 3000, 2000})
	assert.ErrorIs(t, err, ErrAxisNotAscending)
}

func TestNewAxis_CopiesInput(t *testing.T) {
	points := []int{1000, 2000, 3000}
	axis, err := NewAxis(points)
	require.NoError(t, err)

	// Mutating the caller's slice must not reach into the axis
	points[0] = 9999
	assert.Equal(t, 1000, axis.At(0))
}

func TestAxis_LowerIndex_ClampsBelowRange(t *testing.T) {
	axis, err := NewAxis([]int{1000, 2000, 3000, 4000})
	require.NoError(t, err)

	assert.Equal(t, 0, axis.LowerIndex(500))
	assert.Equal(t, 0, axis.LowerIndex(1000))
}

func TestAxis_LowerIndex_ClampsAboveRange(t *testing.T) {
	axis, err := NewAxis([]int{1000, 2000, 3000, 4000})
	require.NoError(t, err)

	// Clamping to the outermost interval lets the caller extrapolate
	// along its slope
	assert.Equal(t, 2, axis.LowerIndex(4000))
	assert.Equal(t, 2, axis.LowerIndex(7500))
}

func TestAxis_LowerIndex_InteriorValues(t *testing.T) {
	axis, err := NewAxis([]int{1000, 2000, 3000, 4000})
	require.NoError(t, err)

	if got := axis.LowerIndex(1500); got != 0 {
		t.Errorf("LowerIndex(1500) = %d, want 0", got)
	}
	if got := axis.LowerIndex(3500); got != 2 {
		t.Errorf("LowerIndex(3500) = %d, want 2", got)
	}
}

func TestAxis_LowerIndex_BreakpointTieResolvesToStartingInterval(t *testing.T) {
	axis, err := NewAxis([]int{1000, 2000, 3000, 4000})
	require.NoError(t, err)

	// 2000 belongs to [2000,3000], not [1000,2000]
	assert.Equal(t, 1, axis.LowerIndex(2000))
	assert.Equal(t, 2, axis.LowerIndex(3000))
}

func TestAxis_Fraction_WithinInterval(t *testing.T) {
	axis, err := NewAxis([]int{1000, 2000, 3000})
	require.NoError(t, err)

	tx, err := axis.fraction(0, 1500)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, tx, 1e-12)

	// Past the clamped edge the fraction exceeds 1 and extrapolates
	tx, err = axis.fraction(1, 3500)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, tx, 1e-12)
}

func TestAxis_Fraction_DegenerateInterval(t *testing.T) {
	// Bypass NewAxis to force the zero-width interval this error guards
	axis := Axis{points: []int{1000, 1000, 2000}}

	_, err := axis.fraction(0, 1000)
	assert.ErrorIs(t, err, ErrDegenerateAxis)
}
