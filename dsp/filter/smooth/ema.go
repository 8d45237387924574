package smooth

// EMA is an exponential moving average low-pass filter:
//
//	value = alpha*sample + (1-alpha)*value
//
// alpha = 1 passes the input through unchanged, alpha = 0 holds the initial
// value forever. For a constant input the error shrinks by (1-alpha) on every
// update.
type EMA struct {
	alpha float64
	value float64
}

// NewEMA creates an EMA filter. alpha must be in [0, 1].
func NewEMA(alpha float64, opts ...Option) (*EMA, error) {
	if err := validateCoefficient(alpha, "alpha"); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	return &EMA{alpha: alpha, value: cfg.initial}, nil
}

// Update consumes one sample and returns the new filter value.
func (f *EMA) Update(sample float64) float64 {
	f.value = blend(f.alpha, sample, f.value)
	return f.value
}

// Value returns the current filter value.
func (f *EMA) Value() float64 { return f.value }

// Alpha returns the smoothing coefficient.
func (f *EMA) Alpha() float64 { return f.alpha }
