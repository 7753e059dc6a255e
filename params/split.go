package params

import "fmt"
import "math"

const splitTolerance = 1e-9

// CheckSplit verifies the split fractions. Fractions must not be negative,
// and once all of the training, validation and test roles are present they
// must sum up to 1. A partially filled split is accepted.
//
// The parameter types and the resolver never call it.
func CheckSplit(s Split) error {
	var sum float64
	for role, fraction := range s {
		if fraction < 0 || math.IsNaN(fraction) {
			return fmt.Errorf("%w: %s=%v", ErrNegativeFraction, role, fraction)
		}
		sum += fraction
	}
	for _, role := range Roles {
		if _, ok := s[role]; !ok {
			return nil
		}
	}
	if math.Abs(sum-1) > splitTolerance {
		return fmt.Errorf("%w: got %v", ErrSplitSum, sum)
	}
	return nil
}
