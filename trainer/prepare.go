package trainer

import "github.com/google/uuid"

import "github.com/neurlang/nnrun/device"
import "github.com/neurlang/nnrun/learning"
import "github.com/neurlang/nnrun/logging"
import "github.com/neurlang/nnrun/model"
import "github.com/neurlang/nnrun/net/feedforward"
import "github.com/neurlang/nnrun/params"

// Run is a prepared, not yet trained, run.
type Run struct {
	ID        uuid.UUID
	Params    *params.FeedforwardTrainingParams
	Strategy  model.Strategy
	Network   *feedforward.FeedforwardNetwork
	Optimizer *learning.Optimizer
	Device    device.Info
}

// Prepare resolves the strategy for p and builds the network predicting
// outputBits bits along with its optimizer. Resolver and build errors are
// returned as they are.
func Prepare(p *params.FeedforwardTrainingParams, outputBits byte) (*Run, error) {
	id := uuid.New()
	strategy, err := model.ResolveStrategy(p)
	if err != nil {
		logging.Error("Cannot resolve strategy", logging.Trainer, "run", id, "error", err)
		return nil, err
	}
	logging.Info("Resolved strategy", logging.Trainer, "run", id, "strategy", strategy.Name())

	net, err := strategy.Build(p, outputBits)
	if err != nil {
		logging.Error("Cannot build network", logging.Trainer, "run", id, "error", err)
		return nil, err
	}
	return &Run{
		ID:        id,
		Params:    p,
		Strategy:  strategy,
		Network:   net,
		Optimizer: learning.NewOptimizer(&p.TrainingParams),
		Device:    device.Current(),
	}, nil
}
