package fuel

import "fmt"

// Injector describes a fuel injector by its flow rate in grams per
// millisecond. The rate is validated once at construction, so PulseWidth
// can never divide by zero.
type Injector struct {
	flowRate float64
}

// NewInjector validates the flow rate and returns an Injector.
func NewInjector(flowRateGPerMs float64) (Injector, error) {
	if flowRateGPerMs <= 0 {
		return Injector{}, fmt.Errorf("%w: got %v g/ms", ErrInjectorFlow, flowRateGPerMs)
	}
	return Injector{flowRate: flowRateGPerMs}, nil
}

// FlowRate returns the calibrated flow rate in g/ms.
func (inj Injector) FlowRate() float64 { return inj.flowRate }

// PulseWidth converts a fuel mass in grams to an injector open time in
// milliseconds.
func (inj Injector) PulseWidth(fuelMassGrams float64) float64 {
	return fuelMassGrams / inj.flowRate
}
