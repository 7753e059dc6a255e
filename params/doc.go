// Package params holds the parameter objects describing a training run.
//
// The variants form a chain: RunParams is embedded by TrainingParams, which is
// embedded by FeedforwardTrainingParams. Each variant has a Describe function
// that renders its parent's description followed by its own fields, one
// "Name:value" line per field.
package params
