package residual

import "github.com/neurlang/nnrun/layer"

var _ layer.Skipper = (*Residual)(nil)

// Skip stores the input of the hashtron layer in front of the combiner.
func (r *Residual) Skip(in layer.Input) {
	r.skip = in
}

// Feature returns the n-th feature, with the n-th layer input feature added back in.
func (r *Residual) Feature(n int) (o uint32) {
	o = r.Combiner.Feature(n)
	if r.skip != nil {
		o ^= r.skip.Feature(n) & r.mask
	}
	return
}
