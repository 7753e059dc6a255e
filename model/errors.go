package model

import "errors"
import "fmt"

import "github.com/neurlang/nnrun/params"

var (
	// ErrUnknownArchitecture matches every *UnknownArchitectureError.
	ErrUnknownArchitecture = errors.New("model: unknown network architecture")
	// ErrOutputBits indicates an output width the final layer cannot produce.
	ErrOutputBits = errors.New("model: output bits must be 1 to 16")
)

// UnknownArchitectureError carries the architecture no strategy is known for.
type UnknownArchitectureError struct {
	Value params.Architecture
}

func (e *UnknownArchitectureError) Error() string {
	return fmt.Sprintf("Unknown network architecture: '%s'", string(e.Value))
}

func (e *UnknownArchitectureError) Is(target error) bool {
	return target == ErrUnknownArchitecture
}
