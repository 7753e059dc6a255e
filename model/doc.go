// Package model selects and runs the strategy building a network for a run.
//
// ResolveStrategy maps the architecture of the run parameters to one of a
// closed set of strategies:
//
//	feedforward          -> FeedforwardStrategy
//	feedforward_residual -> FeedforwardWithResidualStrategy
//
// Any other architecture, including an absent one, fails with an
// *UnknownArchitectureError.
package model
