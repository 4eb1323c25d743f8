package deseason

// rotate returns the cycle circularly shifted right by shift positions, so
// that out[(i+shift) mod n] == cycle[i]. shift must be in [0, len(cycle)).
func rotate(cycle []float64, shift int) []float64 {
	n := len(cycle)
	out := make([]float64, n)
	for i, v := range cycle {
		out[(i+shift)%n] = v
	}
	return out
}

// tileToLength repeats the cycle to exactly length values, truncating the
// final repetition when length is not a multiple of the cycle length.
func tileToLength(cycle []float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = cycle[i%len(cycle)]
	}
	return out
}

// posMod returns a mod m normalized into [0, m).
func posMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
