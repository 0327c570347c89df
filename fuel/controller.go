package fuel

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// EngineReading is one control cycle's sensor snapshot.
type EngineReading struct {
	RPM          int     // engine speed
	Load         int     // manifold absolute pressure, kPa
	AirMass      float64 // inducted air mass, grams per cycle
	CoolantTempC float64 // for cold-start enrichment
	MeasuredAFR  float64 // O2 sensor feedback for closed-loop correction
}

// PulseWidthResult is the injector command for one cycle.
type PulseWidthResult struct {
	Milliseconds float64
}

// CycleTrace records every intermediate stage of one pulse-width
// computation. Pure data, for tuning and explain output.
type CycleTrace struct {
	BaseAFR          float64 // raw table lookup
	EnrichmentFactor float64 // cold-start factor (1.0 when warm)
	EnrichedAFR      float64
	CorrectionFactor float64 // closed-loop factor (1.0 at zero error)
	CorrectedAFR     float64
	FuelMassGrams    float64
	PulseWidthMs     float64
}

// FuelController combines a fuel map and an injector into the full
// reading-to-pulse-width pipeline. Construct once and share freely: all
// held state is immutable, so concurrent ComputePulseWidth calls need no
// coordination.
type FuelController struct {
	fuelMap  *FuelMap
	injector Injector
}

// NewFuelController wires a validated fuel map and injector together.
func NewFuelController(m *FuelMap, inj Injector) *FuelController {
	return &FuelController{fuelMap: m, injector: inj}
}

// FuelMap returns the controller's lookup table.
func (c *FuelController) FuelMap() *FuelMap { return c.fuelMap }

// ComputePulseWidth runs one control cycle: table lookup, cold-start and
// closed-loop corrections in that order, then conversion to an injector
// open time. An error aborts this cycle's output; fallback (for example
// holding the last pulse width) is the caller's decision.
func (c *FuelController) ComputePulseWidth(reading EngineReading) (PulseWidthResult, error) {
	trace, err := c.Trace(reading)
	if err != nil {
		return PulseWidthResult{}, err
	}
	return PulseWidthResult{Milliseconds: trace.PulseWidthMs}, nil
}

// Trace runs the same computation as ComputePulseWidth and returns every
// intermediate stage value.
func (c *FuelController) Trace(reading EngineReading) (CycleTrace, error) {
	base, err := c.fuelMap.TargetAFR(reading.RPM, reading.Load)
	if err != nil {
		return CycleTrace{}, err
	}

	enrichFactor := coldStartFactor(reading.CoolantTempC)
	enriched := base * enrichFactor
	corrFactor := closedLoopFactor(enriched, reading.MeasuredAFR)
	corrected := enriched * corrFactor
	if corrected <= 0 {
		return CycleTrace{}, fmt.Errorf("%w: got %v after corrections", ErrInvalidAFR, corrected)
	}

	fuelMass := reading.AirMass / corrected
	pulseWidth := c.injector.PulseWidth(fuelMass)

	logrus.Debugf("cycle rpm=%d load=%dkPa: baseAFR=%.3f enriched=%.3f corrected=%.3f fuelMass=%.5fg pulseWidth=%.4fms",
		reading.RPM, reading.Load, base, enriched, corrected, fuelMass, pulseWidth)

	return CycleTrace{
		BaseAFR:          base,
		EnrichmentFactor: enrichFactor,
		EnrichedAFR:      enriched,
		CorrectionFactor: corrFactor,
		CorrectedAFR:     corrected,
		FuelMassGrams:    fuelMass,
		PulseWidthMs:     pulseWidth,
	}, nil
}
