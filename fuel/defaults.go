package fuel

// DefaultCalibration returns the stock tune: stoichiometric at light load,
// progressively richer toward full load, 0.02 g/ms injectors.
func DefaultCalibration() Calibration {
	return Calibration{
		RPMAxis:  []int{1000, 2000, 3000, 4000, 5000, 6000},
		LoadAxis: []int{20, 40, 60, 80, 100},
		AFRTable: []float64{
			14.7, 14.7, 14.7, 14.7, 14.7, 14.7, // 20 kPa
			14.3, 14.1, 13.9, 13.7, 13.6, 13.6, // 40 kPa
			13.6, 13.3, 13.0, 12.8, 12.8, 12.8, // 60 kPa
			12.9, 12.6, 12.3, 12.0, 12.0, 12.0, // 80 kPa
			12.2, 12.0, 11.8, 11.6, 11.5, 11.5, // 100 kPa
		},
		InjectorFlowGPerMs: 0.02,
	}
}
