package smooth

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is matched by every constructor validation failure.
var ErrInvalidParameter = errors.New("smooth: invalid parameter")

// ParameterError reports a smoothing coefficient outside [0, 1].
type ParameterError struct {
	Name  string
	Value float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("smooth: %s must be in [0, 1]: %v", e.Name, e.Value)
}

// Unwrap makes errors.Is(err, ErrInvalidParameter) hold.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// validateCoefficient rejects values outside the closed unit interval. NaN
// fails both comparisons, so it is rejected explicitly.
func validateCoefficient(value float64, name string) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return &ParameterError{Name: name, Value: value}
	}

	return nil
}
