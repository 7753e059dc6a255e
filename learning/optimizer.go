// Package learning builds the optimizer settings of a training run
package learning

import "github.com/neurlang/nnrun/device"
import "github.com/neurlang/nnrun/logging"
import "github.com/neurlang/nnrun/params"

// Adam defaults, as used when the run does not override them
const (
	DefaultLearningRate = 0.001
	DefaultBeta1        = 0.9
	DefaultBeta2        = 0.999
	DefaultEpsilon      = 1e-7
)

// Optimizer describes an Adam optimizer for a training run.
type Optimizer struct {
	Name string

	LearningRate float64
	Beta1        float64
	Beta2        float64
	Epsilon      float64

	Threads int // number of threads for learning
	Lanes   int // vector lanes per hashing step

	// Overridden reports whether LearningRate came from the run parameters
	Overridden bool
}

// NewOptimizer creates the optimizer for t. The learning rate of t, when
// present, is used verbatim; everything else keeps the Adam defaults.
func NewOptimizer(t *params.TrainingParams) *Optimizer {
	return NewOptimizerFor(t, device.Current())
}

// NewOptimizerFor is NewOptimizer for a given device.
func NewOptimizerFor(t *params.TrainingParams, dev device.Info) *Optimizer {
	o := &Optimizer{
		Name:         "adam",
		LearningRate: DefaultLearningRate,
		Beta1:        DefaultBeta1,
		Beta2:        DefaultBeta2,
		Epsilon:      DefaultEpsilon,
		Threads:      dev.Threads,
		Lanes:        dev.Lanes,
	}
	if t != nil && t.LearningRate != nil {
		o.LearningRate = *t.LearningRate
		o.Overridden = true
	}
	logging.Debug("Created optimizer", logging.Learning,
		"name", o.Name, "learningRate", o.LearningRate, "overridden", o.Overridden)
	return o
}
