package fuel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp_Endpoints(t *testing.T) {
	assert.InDelta(t, 10.0, lerp(10, 20, 0), 1e-12)
	assert.InDelta(t, 20.0, lerp(10, 20, 1), 1e-12)
}

func TestLerp_Midpoint(t *testing.T) {
	if got := lerp(10, 20, 0.5); got != 15 {
		t.Errorf("lerp(10, 20, 0.5) = %v, want 15", got)
	}
}

func TestLerp_UnclampedExtrapolation(t *testing.T) {
	// t outside [0,1] extrapolates linearly instead of holding the edge
	assert.InDelta(t, 25.0, lerp(10, 20, 1.5), 1e-12)
	assert.InDelta(t, 5.0, lerp(10, 20, -0.5), 1e-12)
}

func TestBilerp_CornersAndCenter(t *testing.T) {
	// GIVEN the cell corners q11=1 q12=2 q21=3 q22=4
	q11, q12, q21, q22 := 1.0, 2.0, 3.0, 4.0

	// THEN each corner is recovered exactly at its fractional position
	assert.InDelta(t, q11, bilerp(q11, q12, q21, q22, 0, 0), 1e-12)
	assert.InDelta(t, q12, bilerp(q11, q12, q21, q22, 1, 0), 1e-12)
	assert.InDelta(t, q21, bilerp(q11, q12, q21, q22, 0, 1), 1e-12)
	assert.InDelta(t, q22, bilerp(q11, q12, q21, q22, 1, 1), 1e-12)

	// AND the center is the mean of the corners
	assert.InDelta(t, 2.5, bilerp(q11, q12, q21, q22, 0.5, 0.5), 1e-12)
}
