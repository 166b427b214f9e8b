package kabsch

import (
	"errors"
	"fmt"
)

// ErrFactorizationFailed is returned when the SVD underlying the rotation
// estimate does not converge. Match with errors.Is.
var ErrFactorizationFailed = errors.New("kabsch: SVD factorization failed")

// DegenerateInputError reports that the variance of the source point set is
// too small for a rotation to be determined (all points coincide). The
// value is the offending variance. Match with errors.As.
type DegenerateInputError float64

func (e DegenerateInputError) Error() string {
	return fmt.Sprintf("kabsch: degenerate input: variance %v is too small", float64(e))
}
