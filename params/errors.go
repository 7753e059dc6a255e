package params

import "errors"
import "fmt"

var (
	// ErrNonPositiveLayer indicates a hidden layer with zero or negative width.
	ErrNonPositiveLayer = errors.New("params: hidden layer width must be positive")
	// ErrSplitSum indicates split fractions that do not sum up to 1.
	ErrSplitSum = errors.New("params: split fractions must sum up to 1")
	// ErrNegativeFraction indicates a negative split fraction.
	ErrNegativeFraction = errors.New("params: split fraction must not be negative")
)

// LayerError reports which hidden layer is invalid.
type LayerError struct {
	Index int
	Width int
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("params: hidden layer %d has width %d, must be positive", e.Index, e.Width)
}

func (e *LayerError) Is(target error) bool {
	return target == ErrNonPositiveLayer
}
