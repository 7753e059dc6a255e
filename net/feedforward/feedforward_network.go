// Package feedforward implements a feedforward network type
package feedforward

import "github.com/neurlang/nnrun/hash"
import "github.com/neurlang/nnrun/hashtron"
import "github.com/neurlang/nnrun/layer"
import "github.com/neurlang/nnrun/parallel"

// SingleValue is a single value returned by the final layer
type SingleValue uint32

// Feature extracts the feature from SingleValue
func (v SingleValue) Feature(n int) uint32 {
	return uint32(v)
}

// FeedforwardNetwork is the feedforward network. Hashtron layers sit at even
// positions; the odd position after a hashtron layer holds its combiner, or
// nothing for the final mapping layer.
type FeedforwardNetwork struct {
	layers    [][]hashtron.Hashtron
	mapping   []byte
	combiners []layer.Layer
	premodulo []uint32
	threads   int
}

// Len returns the number of hashtrons which need to be trained inside the network.
func (f FeedforwardNetwork) Len() (o int) {
	for _, v := range f.layers {
		o += len(v)
	}
	return
}

// LenLayers returns the number of layers. Each Layer and Combiner counts as a layer here.
func (f FeedforwardNetwork) LenLayers() int {
	return len(f.layers)
}

// Widths returns the number of hashtrons in each hashtron layer, in build order.
func (f FeedforwardNetwork) Widths() (o []int) {
	for i, v := range f.layers {
		if f.combiners[i] == nil {
			o = append(o, len(v))
		}
	}
	return
}

// Combiner returns the combiner layer at position l, or nil.
func (f FeedforwardNetwork) Combiner(l int) layer.Layer {
	if l < 0 || l >= len(f.combiners) {
		return nil
	}
	return f.combiners[l]
}

// Premodulo returns the input feature premodulo of layer l.
func (f FeedforwardNetwork) Premodulo(l int) uint32 {
	if l < 0 || l >= len(f.premodulo) {
		return 0
	}
	return f.premodulo[l]
}

// GetLayer gets the layer number of hashtron based on hashtron number. Returns -1 on failure.
func (f FeedforwardNetwork) GetLayer(n int) int {
	for i, v := range f.layers {
		if n < len(v) {
			return i
		}
		n -= len(v)
	}
	return -1
}

// GetPosition gets the position of hashtron within layer based on the overall
// hashtron number. Returns -1 on failure.
func (f FeedforwardNetwork) GetPosition(n int) int {
	for _, v := range f.layers {
		if n < len(v) {
			return n
		}
		n -= len(v)
	}
	return -1
}

// GetHashtron gets n-th hashtron pointer in the network.
func (f FeedforwardNetwork) GetHashtron(n int) *hashtron.Hashtron {
	for _, v := range f.layers {
		if n < len(v) {
			return &v[n]
		}
		n -= len(v)
	}
	return nil
}

// SetThreads limits the number of goroutines a forward pass of one layer uses.
// Zero means one goroutine per hashtron.
func (f *FeedforwardNetwork) SetThreads(n int) {
	f.threads = n
}

// Forget replaces every hashtron with an untrained one.
func (f *FeedforwardNetwork) Forget() {
	for _, v := range f.layers {
		for j := range v {
			h, _ := hashtron.New(nil, v[j].Bits())
			if h != nil {
				v[j] = *h
			} else {
				v[j] = hashtron.Hashtron{}
			}
		}
	}
}

// NewLayer adds a hashtron layer to the end of network with n hashtrons, each recognizing bits bits.
func (f *FeedforwardNetwork) NewLayer(n int, bits byte) {
	f.NewLayerP(n, bits, 0)
}

// NewLayerP adds a hashtron layer to the end of network with n hashtrons, each recognizing bits bits, and input feature pre-modulo.
func (f *FeedforwardNetwork) NewLayerP(n int, bits byte, premodulo uint32) {
	var layer = make([]hashtron.Hashtron, n)
	for i := range layer {
		h, _ := hashtron.New(nil, bits)
		if h != nil {
			layer[i] = *h
		}
	}
	if bits == 0 {
		bits = 1
	}
	f.layers = append(f.layers, layer)
	f.mapping = append(f.mapping, bits)
	f.combiners = append(f.combiners, nil)
	f.premodulo = append(f.premodulo, premodulo)
}

// NewCombiner adds a combiner layer to the end of network
func (f *FeedforwardNetwork) NewCombiner(layer layer.Layer) {
	f.layers = append(f.layers, nil)
	f.mapping = append(f.mapping, 0)
	f.combiners = append(f.combiners, layer)
	f.premodulo = append(f.premodulo, 0)
}

// Infer infers the network output based on input.
func (f FeedforwardNetwork) Infer(in layer.Input) uint32 {
	var out = in
	for l := 0; l < f.LenLayers(); l += 2 {
		out = f.Forward(out, l)
	}
	return out.Feature(0)
}

// Forward computes the output of hashtron layer l, and of its combiner if
// there is one, from the layer input in.
func (f FeedforwardNetwork) Forward(in layer.Input, l int) layer.Input {
	if len(f.combiners) > l+1 && f.combiners[l+1] != nil {
		var combiner = f.combiners[l+1].Lay()
		if s, ok := combiner.(layer.Skipper); ok {
			s.Skip(in)
		}
		var threads = f.threads
		if threads <= 0 {
			threads = len(f.layers[l])
		}
		parallel.ForEach(len(f.layers[l]), threads, func(i int) {
			var feat = in.Feature(i)
			if f.premodulo[l] != 0 {
				feat = hash.Hash(feat, uint32(i), f.premodulo[l])
			}
			var bit = f.layers[l][i].Forward(feat, false)
			combiner.Put(i, bit&1 != 0)
		})
		return combiner
	}

	var feat = in.Feature(0)
	if f.premodulo[l] != 0 {
		feat = hash.Hash(feat, 0, f.premodulo[l])
	}
	return SingleValue(f.layers[l][0].Forward(feat, false))
}

// GetBits reports the number of bits predicted by this network
func (f *FeedforwardNetwork) GetBits() (ret byte) {
	if len(f.mapping) == 0 {
		return 1
	}
	ret = f.mapping[len(f.mapping)-1]
	if ret == 0 {
		ret = 1
	}
	return
}

// GetClasses reports the number of classes predicted by this network
func (f *FeedforwardNetwork) GetClasses() uint32 {
	return uint32(1) << f.GetBits()
}
