package model

import "github.com/neurlang/nnrun/device"
import "github.com/neurlang/nnrun/hash"
import "github.com/neurlang/nnrun/layer"
import "github.com/neurlang/nnrun/logging"
import "github.com/neurlang/nnrun/net/feedforward"
import "github.com/neurlang/nnrun/params"

// maxWindow bounds the bits a combiner packs into one feature.
const maxWindow = 16

// build lays out the hidden layers of p. The combiner func may return nil
// for a hidden layer to get a fully connected combiner.
func build(s Strategy, p *params.FeedforwardTrainingParams, outputBits byte,
	combiner func(i, width int, window byte) layer.Layer) (*feedforward.FeedforwardNetwork, error) {

	if outputBits == 0 || outputBits > 16 {
		return nil, ErrOutputBits
	}
	if p == nil {
		p = params.NewFeedforwardTrainingParams()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var dev = device.Current()
	var net feedforward.FeedforwardNetwork
	net.SetThreads(dev.Threads)

	var window byte
	for i, width := range p.HiddenLayers {
		net.NewLayerP(width, 0, hash.Premodulo(window))
		window = windowOf(width)
		var c = combiner(i, width, window)
		if c == nil {
			c = fullCombiner(width, window)
		}
		net.NewCombiner(c)
	}
	net.NewLayerP(1, outputBits, hash.Premodulo(window))

	logging.Info("Built network", logging.Builder,
		"strategy", s.Name(),
		"widths", net.Widths(),
		"hashtrons", net.Len(),
		"outputBits", outputBits,
		"backend", dev.Backend)
	return &net, nil
}

func windowOf(width int) byte {
	if width > maxWindow {
		return maxWindow
	}
	return byte(width)
}
