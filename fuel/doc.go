// Package fuel implements the fuel-delivery decision stage of an engine
// control unit: one sensor snapshot in, one injector pulse-width command out.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - fuelmap.go: bilinear target-AFR lookup over the calibrated (rpm, load) table
//   - corrections.go: cold-start enrichment and closed-loop O2 trim
//   - controller.go: the per-cycle pipeline and its entry point
//
// # Pipeline
//
// Data flows one way each control cycle:
//
//	EngineReading → FuelMap.TargetAFR → cold-start enrichment →
//	closed-loop correction → fuel mass → Injector.PulseWidth
//
// FuelMap and Injector are built once from a Calibration and reused across
// cycles. All of their state is immutable after construction, so any number
// of concurrent callers may share one FuelController without locks.
// EngineReading and PulseWidthResult are per-cycle values with no further
// lifecycle.
//
// # Errors
//
// Construction errors (ErrTableShape, ErrAxisNotAscending, ErrInjectorFlow)
// prevent object creation; per-cycle errors (ErrDegenerateAxis,
// ErrInvalidAFR) abort that cycle's output and leave fallback behavior to
// the caller. Nothing in the pipeline retries: the inputs are deterministic,
// so re-invoking with the same bad configuration reproduces the same
// failure.
package fuel
