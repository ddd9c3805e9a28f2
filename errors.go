package gear

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec is returned when gear parameters are out of their domain.
	ErrInvalidSpec = errors.New("invalid gear spec")
	// ErrNumericDegenerate is returned when an intermediate value is NaN or infinite
	// even though the parameters passed validation.
	ErrNumericDegenerate = errors.New("numerically degenerate gear geometry")
	// ErrIterationLimit is returned when an involute does not reach the
	// outside circle within the iteration cap.
	ErrIterationLimit = errors.New("involute iteration limit exceeded")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidSpec}, args...)...)
}

func degeneratef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNumericDegenerate}, args...)...)
}
