package hashtron

import "errors"
import "math/rand"

// ErrBits is returned when more output bits are requested than Forward can produce.
var ErrBits = errors.New("hashtron: at most 16 output bits are supported")

// New creates a hashtron running program and producing bits output bits.
// A nil program makes an untrained hashtron with a single random command.
// Zero bits means one bit.
func New(program [][2]uint32, bits byte) (h *Hashtron, err error) {
	if bits > 16 {
		return nil, ErrBits
	}
	h = new(Hashtron)
	if bits == 0 {
		bits = 1
	}
	if program == nil {
		h.program = [][2]uint32{{rand.Uint32() >> 1, 2}}
	} else {
		h.program = program
	}
	h.bits = bits
	return
}
