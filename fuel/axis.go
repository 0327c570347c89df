package fuel

import "fmt"

// Axis is the ordered set of integer breakpoints for one lookup dimension.
// Breakpoints are strictly increasing. The set is immutable after
// construction; NewAxis copies its input.
type Axis struct {
	points []int
}

// NewAxis validates breakpoints and copies them into an Axis.
func NewAxis(points []int) (Axis, error) {
	if len(points) < 2 {
		return Axis{}, fmt.Errorf("%w: got %d", ErrAxisLen, len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			return Axis{}, fmt.Errorf("%w: %d followed by %d at index %d",
				ErrAxisNotAscending, points[i-1], points[i], i)
		}
	}
	return Axis{points: append([]int(nil), points...)}, nil
}

// Len returns the number of breakpoints.
func (a Axis) Len() int { return len(a.points) }

// At returns the breakpoint at index i.
func (a Axis) At(i int) int { return a.points[i] }

// Points returns a copy of the breakpoints, low to high.
func (a Axis) Points() []int { return append([]int(nil), a.points...) }

// LowerIndex returns the index i of the interval [At(i), At(i+1)] enclosing
// value. Values outside the axis clamp to the outermost interval, so lookups
// beyond the table edge extrapolate along that interval's slope. A value
// equal to an interior breakpoint resolves to the interval starting there.
func (a Axis) LowerIndex(value int) int {
	last := len(a.points) - 1
	if value <= a.points[0] {
		return 0
	}
	if value >= a.points[last] {
		return last - 1
	}
	for i := 0; i < last; i++ {
		if value >= a.points[i] && value < a.points[i+1] {
			return i
		}
	}
	return last - 1 // unreachable with validated points
}

// fraction returns the normalized position of value within the interval
// starting at index i. Unclamped: clamped-index lookups past the axis edge
// yield fractions outside [0,1] and extrapolate linearly.
func (a Axis) fraction(i, value int) (float64, error) {
	width := a.points[i+1] - a.points[i]
	if width == 0 {
		return 0, fmt.Errorf("%w: breakpoint %d repeated at index %d",
			ErrDegenerateAxis, a.points[i], i)
	}
	return float64(value-a.points[i]) / float64(width), nil
}
