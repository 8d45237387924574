package smooth

import "math"

// RMS is an exponential filter in the power domain:
//
//	value = sqrt(alpha*sample^2 + (1-alpha)*value^2)
//
// It smooths signal energy rather than amplitude, which suits AC signals,
// vibration and power measurements.
//
// The output is never negative. Both terms of the radicand are squares scaled
// by non-negative weights (alpha and 1-alpha for alpha in [0, 1]), so the
// radicand cannot drop below zero whatever the sign of sample or of the
// initial value.
type RMS struct {
	alpha float64
	value float64
}

// NewRMS creates an RMS filter. alpha must be in [0, 1].
func NewRMS(alpha float64, opts ...Option) (*RMS, error) {
	if err := validateCoefficient(alpha, "alpha"); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	return &RMS{alpha: alpha, value: cfg.initial}, nil
}

// Update consumes one sample and returns the new filter value.
func (f *RMS) Update(sample float64) float64 {
	f.value = math.Sqrt(f.alpha*sample*sample + (1-f.alpha)*f.value*f.value)
	return f.value
}

// Value returns the current filter value. Before the first update this is the
// initial value as given, which may be negative.
func (f *RMS) Value() float64 { return f.value }

// Alpha returns the smoothing coefficient.
func (f *RMS) Alpha() float64 { return f.alpha }
