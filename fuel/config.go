package fuel

import "fmt"

// Calibration groups everything needed to build a FuelController: both
// lookup axes, the AFR table in load-major row order, and the injector flow
// rate. Loaders (YAML tune files, bundled defaults) produce this struct;
// Build runs all construction validation.
type Calibration struct {
	RPMAxis            []int
	LoadAxis           []int
	AFRTable           []float64 // row-major, one row per load breakpoint
	InjectorFlowGPerMs float64
}

// Build validates the calibration and constructs the controller.
func (c Calibration) Build() (*FuelController, error) {
	m, err := NewFuelMap(c.RPMAxis, c.LoadAxis, c.AFRTable)
	if err != nil {
		return nil, fmt.Errorf("building fuel map: %w", err)
	}
	inj, err := NewInjector(c.InjectorFlowGPerMs)
	if err != nil {
		return nil, fmt.Errorf("building injector: %w", err)
	}
	return NewFuelController(m, inj), nil
}
