package model

import "github.com/neurlang/nnrun/layer"
import "github.com/neurlang/nnrun/layer/full"
import "github.com/neurlang/nnrun/net/feedforward"
import "github.com/neurlang/nnrun/params"

// FeedforwardStrategy builds a plain feedforward network: every hidden layer
// is followed by a fully connected combiner.
type FeedforwardStrategy struct{}

func (FeedforwardStrategy) Name() string {
	return "FeedforwardStrategy"
}

func (FeedforwardStrategy) Architecture() params.Architecture {
	return params.Feedforward
}

func (s FeedforwardStrategy) Build(p *params.FeedforwardTrainingParams, outputBits byte) (*feedforward.FeedforwardNetwork, error) {
	return build(s, p, outputBits, func(int, int, byte) layer.Layer {
		return nil
	})
}

// fullCombiner is the combiner used when a strategy has no special one.
func fullCombiner(width int, window byte) layer.Layer {
	return full.MustNew(width, 1, window)
}
