package fuel

// Trim constants for the two correction stages. Both stages are
// intentionally simple linear models, not PID loops.
const (
	warmCoolantC   = 90.0 // coolant temperature at which cold-start trim ends
	maxColdFactor  = 1.3  // enrichment factor at 0 °C
	coldFactorSpan = 0.3  // factor drop from 0 °C to warmCoolantC
	o2Sensitivity  = 0.1  // proportional gain on target-vs-measured AFR error
)

// coldStartFactor returns the warmup enrichment factor for a coolant
// temperature: 1.0 at or above operating temperature, ramping linearly to
// maxColdFactor at 0 °C. Temperatures below 0 °C extrapolate the same line.
func coldStartFactor(coolantTempC float64) float64 {
	if coolantTempC >= warmCoolantC {
		return 1.0
	}
	return maxColdFactor - (coolantTempC/warmCoolantC)*coldFactorSpan
}

// ColdStartEnrichment applies the warmup trim to a target AFR. Identity at
// or above operating temperature.
func ColdStartEnrichment(afr, coolantTempC float64) float64 {
	return afr * coldStartFactor(coolantTempC)
}

// closedLoopFactor returns the feedback correction factor for a target AFR
// against the measured O2 reading. Single-sample proportional term only; no
// state carried between cycles.
func closedLoopFactor(afr, measuredAFR float64) float64 {
	afrError := afr - measuredAFR
	return 1.0 - o2Sensitivity*afrError
}

// ClosedLoopCorrection trims the target AFR by the O2 feedback factor.
// Identity when the measured AFR matches the target. Applied after
// ColdStartEnrichment: the sensor evaluates the enriched mixture, not the
// raw table value.
func ClosedLoopCorrection(afr, measuredAFR float64) float64 {
	return afr * closedLoopFactor(afr, measuredAFR)
}
