package hash

import "math"

import "github.com/jbarham/primegen"

// NextPrime returns the smallest prime not less than n. It is used to size
// the premodulo of a layer, so that features hashed into it spread over a
// prime range. Returns 0 when no such prime fits into uint32.
func NextPrime(n uint32) uint32 {
	if n <= 2 {
		return 2
	}
	pg := primegen.New()
	pg.SkipTo(uint64(n))
	p := pg.Next()
	if p > math.MaxUint32 {
		return 0
	}
	return uint32(p)
}

// Premodulo returns the premodulo for a layer reading features of window bits.
// Zero window means the layer reads raw features and gets no premodulo.
func Premodulo(window byte) uint32 {
	if window == 0 {
		return 0
	}
	if window >= 32 {
		return NextPrime(math.MaxUint32 - 4)
	}
	return NextPrime(1 << window)
}
