package fuel

// lerp linearly interpolates between a and b. t is not clamped: callers at a
// table edge pass t outside [0,1] and get linear extrapolation rather than a
// held edge value.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// bilerp combines four cell corners with fractional positions tx (rpm
// dimension) and ty (load dimension): two lerps across rpm, one across load.
func bilerp(q11, q12, q21, q22, tx, ty float64) float64 {
	r1 := lerp(q11, q12, tx)
	r2 := lerp(q21, q22, tx)
	return lerp(r1, r2, ty)
}
