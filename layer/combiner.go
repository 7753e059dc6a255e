// Package layer defines the combiner and layer interfaces placed between hashtron layers
package layer

// Combiner combines input booleans, stores them internally, and combines them to form output features.
type Combiner interface {

	// Put inserts a boolean at position n.
	Put(n int, v bool)

	// Feature returns the n-th feature from the combiner. Next layer reads
	// its inputs using this method for hashtron n in the next layer.
	Feature(n int) (o uint32)

	// Disregard tells whether putting value false at position n would not affect
	// any feature output (as opposed to putting value true at position n).
	Disregard(n int) bool
}

// Skipper is a combiner which also sees the input of the hashtron layer
// in front of it, as a residual connection does.
type Skipper interface {
	Combiner

	// Skip stores the layer input. It is called before any Put.
	Skip(in Input)
}
