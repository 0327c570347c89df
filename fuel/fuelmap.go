// fuel/fuelmap.go
package fuel

import "fmt"

// FuelMap maps an (rpm, load) operating point to a target air/fuel ratio by
// bilinear interpolation over a calibrated table. The table is stored
// row-major with one row per load breakpoint:
//
//	index = loadIdx * rpmAxis.Len() + rpmIdx
//
// Immutable after construction; safe for concurrent readers.
type FuelMap struct {
	rpmAxis  Axis
	loadAxis Axis
	afrTable []float64
}

// NewFuelMap builds a fuel map from raw breakpoints and a flattened
// load-major AFR table of exactly len(rpmPoints)*len(loadPoints) values.
// Axis and table slices are copied.
func NewFuelMap(rpmPoints, loadPoints []int, afrTable []float64) (*FuelMap, error) {
	rpmAxis, err := NewAxis(rpmPoints)
	if err != nil {
		return nil, fmt.Errorf("rpm axis: %w", err)
	}
	loadAxis, err := NewAxis(loadPoints)
	if err != nil {
		return nil, fmt.Errorf("load axis: %w", err)
	}
	if want := rpmAxis.Len() * loadAxis.Len(); len(afrTable) != want {
		return nil, fmt.Errorf("%w: want %d values (%d rpm x %d load), got %d",
			ErrTableShape, want, rpmAxis.Len(), loadAxis.Len(), len(afrTable))
	}
	return &FuelMap{
		rpmAxis:  rpmAxis,
		loadAxis: loadAxis,
		afrTable: append([]float64(nil), afrTable...),
	}, nil
}

// RPMAxis returns the engine-speed axis.
func (m *FuelMap) RPMAxis() Axis { return m.rpmAxis }

// LoadAxis returns the manifold-pressure axis.
func (m *FuelMap) LoadAxis() Axis { return m.loadAxis }

// Cell returns the raw table value at a breakpoint pair.
func (m *FuelMap) Cell(loadIdx, rpmIdx int) float64 {
	return m.afrTable[loadIdx*m.rpmAxis.Len()+rpmIdx]
}

// TargetAFR returns the interpolated target air/fuel ratio for an operating
// point. Points beyond a table edge extrapolate along the outermost
// interval's slope.
func (m *FuelMap) TargetAFR(rpm, load int) (float64, error) {
	r := m.rpmAxis.LowerIndex(rpm)
	l := m.loadAxis.LowerIndex(load)

	tx, err := m.rpmAxis.fraction(r, rpm)
	if err != nil {
		return 0, fmt.Errorf("rpm axis: %w", err)
	}
	ty, err := m.loadAxis.fraction(l, load)
	if err != nil {
		return 0, fmt.Errorf("load axis: %w", err)
	}

	q11 := m.Cell(l, r)
	q12 := m.Cell(l, r+1)
	q21 := m.Cell(l+1, r)
	q22 := m.Cell(l+1, r+1)

	return bilerp(q11, q12, q21, q22, tx, ty), nil
}
