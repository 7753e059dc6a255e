// Package residual implements a fully connected combiner with a residual connection
package residual

import "github.com/neurlang/nnrun/layer"
import "github.com/neurlang/nnrun/layer/full"

type ResidualLayer struct {
	full *full.FullLayer
}

type Residual struct {
	layer.Combiner
	skip layer.Input
	mask uint32
}

// MustNew creates a new residual layer with size, stride and window
func MustNew(size int, stride, window byte) *ResidualLayer {
	o, err := New(size, stride, window)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new residual layer. Its features are those of a full layer
// of the same shape, xored with the same features of the layer input.
func New(size int, stride, window byte) (o *ResidualLayer, err error) {
	f, err := full.New(size, stride, window)
	if err != nil {
		return nil, err
	}
	return &ResidualLayer{full: f}, nil
}

// Window reports the number of bits in each output feature
func (i *ResidualLayer) Window() byte {
	return i.full.Window()
}

// Lay turns residual layer into a combiner
func (i *ResidualLayer) Lay() layer.Combiner {
	o := new(Residual)
	o.Combiner = i.full.Lay()
	o.mask = ^uint32(0)
	if w := i.full.Window(); w < 32 {
		o.mask = (1 << w) - 1
	}
	return o
}
