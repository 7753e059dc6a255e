package model

import "github.com/neurlang/nnrun/layer"
import "github.com/neurlang/nnrun/layer/residual"
import "github.com/neurlang/nnrun/net/feedforward"
import "github.com/neurlang/nnrun/params"

// FeedforwardWithResidualStrategy builds a feedforward network whose hidden
// layers, except the first, feed their input forward past themselves.
type FeedforwardWithResidualStrategy struct{}

func (FeedforwardWithResidualStrategy) Name() string {
	return "FeedforwardWithResidualStrategy"
}

func (FeedforwardWithResidualStrategy) Architecture() params.Architecture {
	return params.FeedforwardResidual
}

func (s FeedforwardWithResidualStrategy) Build(p *params.FeedforwardTrainingParams, outputBits byte) (*feedforward.FeedforwardNetwork, error) {
	return build(s, p, outputBits, func(i, width int, window byte) layer.Layer {
		if i == 0 {
			return nil
		}
		return residual.MustNew(width, 1, window)
	})
}
