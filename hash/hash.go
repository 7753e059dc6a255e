// Package hash implements the modular hash feeding hashtron layers
package hash

// Hash mixes n with salt s and reduces the result into the range 0 to max-1.
// A max of zero always yields zero.
func Hash(n uint32, s uint32, max uint32) uint32 {
	var m = n - s

	// xor shift with prime coefficients
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	m += s

	// multiply shift reduction (Lemire) in place of a modulo
	return uint32((uint64(m) * uint64(max)) >> 32)
}
