package full

// Put inserts a boolean at position n.
func (f *Full) Put(n int, v bool) {
	f.vec[n] = v
}

// Feature returns the n-th feature from the combiner. Next layer reads
// its inputs using this method for hashtron n in the next layer.
func (f *Full) Feature(n int) (o uint32) {
	if len(f.vec) == 0 {
		return 0
	}
	start := n * int(f.stride)
	for pos := 0; pos < int(f.window); pos++ {
		o <<= 1
		if f.vec[(start+pos)%len(f.vec)] {
			o |= 1
		}
	}
	return
}

// Disregard tells whether putting value false at position n would not affect
// any feature output (as opposed to putting value true at position n).
func (f *Full) Disregard(n int) bool {
	return false
}
