package params

import "strconv"
import "strings"

// FeedforwardTrainingParams are the parameters of a feedforward model training run.
type FeedforwardTrainingParams struct {
	TrainingParams

	// HiddenLayers are the widths of the hidden layers, in build order
	HiddenLayers []int
}

// NewFeedforwardTrainingParams creates FeedforwardTrainingParams with no hidden layers.
func NewFeedforwardTrainingParams() *FeedforwardTrainingParams {
	return &FeedforwardTrainingParams{
		TrainingParams: *NewTrainingParams(),
		HiddenLayers:   []int{},
	}
}

// R returns the embedded RunParams, nil for a nil f.
func (f *FeedforwardTrainingParams) R() *RunParams {
	if f == nil {
		return nil
	}
	return &f.RunParams
}

// DescribeFeedforward renders the feedforward training parameters.
func DescribeFeedforward(f *FeedforwardTrainingParams) string {
	if f == nil {
		f = new(FeedforwardTrainingParams)
	}
	var b strings.Builder
	b.WriteString(DescribeTraining(&f.TrainingParams))
	b.WriteString("\nHidden layers:[")
	for i, width := range f.HiddenLayers {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(width))
	}
	b.WriteByte(']')
	return b.String()
}

func (f *FeedforwardTrainingParams) String() string {
	return DescribeFeedforward(f)
}

// Validate checks that every hidden layer width is positive.
func (f *FeedforwardTrainingParams) Validate() error {
	for i, width := range f.HiddenLayers {
		if width <= 0 {
			return &LayerError{Index: i, Width: width}
		}
	}
	return nil
}
