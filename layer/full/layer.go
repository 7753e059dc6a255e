// Package full implements a fully connected layer and combiner
package full

import "errors"

import "github.com/neurlang/nnrun/layer"

// ErrSize is returned for a layer of no hashtrons.
var ErrSize = errors.New("full: layer size must be positive")

// ErrWindow is returned when the window does not fit into a feature.
var ErrWindow = errors.New("full: window must be 1 to 32 bits")

type FullLayer struct {
	size   int
	stride byte
	window byte
}

type Full struct {
	vec    []bool
	stride byte
	window byte
}

// MustNew creates a new full layer with size, stride and window
func MustNew(size int, stride, window byte) *FullLayer {
	o, err := New(size, stride, window)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new full layer of size hashtron outputs. Feature n reads
// window consecutive outputs starting at n*stride, wrapping around the layer.
func New(size int, stride, window byte) (o *FullLayer, err error) {
	if size <= 0 {
		return nil, ErrSize
	}
	if window == 0 || window > 32 {
		return nil, ErrWindow
	}
	o = new(FullLayer)
	o.size = size
	o.stride = stride
	o.window = window
	return
}

// Window reports the number of bits in each output feature
func (i *FullLayer) Window() byte {
	return i.window
}

// Lay turns full layer into a combiner
func (i *FullLayer) Lay() layer.Combiner {
	o := new(Full)
	o.vec = make([]bool, i.size)
	o.stride = i.stride
	o.window = i.window
	return o
}
