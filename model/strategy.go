package model

import "github.com/neurlang/nnrun/logging"
import "github.com/neurlang/nnrun/net/feedforward"
import "github.com/neurlang/nnrun/params"

// Strategy builds a trainable network from feedforward training parameters.
type Strategy interface {
	Name() string
	Architecture() params.Architecture

	// Build creates an untrained network with one hashtron layer per hidden
	// layer and a final mapping layer predicting outputBits bits.
	Build(p *params.FeedforwardTrainingParams, outputBits byte) (*feedforward.FeedforwardNetwork, error)
}

// ParseArchitecture parses a free-form architecture name, failing with an
// *UnknownArchitectureError for names no strategy is known for.
func ParseArchitecture(name string) (params.Architecture, error) {
	switch arch := params.Architecture(name); arch {
	case params.Feedforward, params.FeedforwardResidual:
		return arch, nil
	default:
		return arch, &UnknownArchitectureError{Value: arch}
	}
}

// ResolveStrategy returns the strategy for the architecture of p.
// A nil p resolves like an absent architecture.
func ResolveStrategy(p params.Params) (Strategy, error) {
	var arch params.Architecture
	if p != nil && p.R() != nil {
		arch = p.R().Architecture
	}
	switch arch {
	case params.Feedforward:
		return FeedforwardStrategy{}, nil
	case params.FeedforwardResidual:
		return FeedforwardWithResidualStrategy{}, nil
	default:
		logging.Debug("Unknown architecture", logging.Resolver, "architecture", arch)
		return nil, &UnknownArchitectureError{Value: arch}
	}
}

// Strategies lists every known strategy.
func Strategies() []Strategy {
	return []Strategy{FeedforwardStrategy{}, FeedforwardWithResidualStrategy{}}
}
