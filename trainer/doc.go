// Package trainer prepares training runs. It resolves the strategy for the
// run parameters, builds the untrained network and the optimizer, and hands
// them out together as a Run, tagged with an id for the logs.
package trainer
