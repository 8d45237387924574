package smooth

// Asymmetric is an EMA filter with separate coefficients for rising and
// falling input. alphaUp applies when the sample is strictly greater than the
// current value; otherwise, including equality, alphaDown applies.
//
// Typical uses are battery gauges, peak followers and alarm displays where a
// drop should show at once but a rise only after it persists.
type Asymmetric struct {
	alphaUp   float64
	alphaDown float64
	value     float64
}

// NewAsymmetric creates an asymmetric filter. Both coefficients must be in
// [0, 1]; alphaUp is checked first.
func NewAsymmetric(alphaUp, alphaDown float64, opts ...Option) (*Asymmetric, error) {
	if err := validateCoefficient(alphaUp, "alpha_up"); err != nil {
		return nil, err
	}

	if err := validateCoefficient(alphaDown, "alpha_down"); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	return &Asymmetric{
		alphaUp:   alphaUp,
		alphaDown: alphaDown,
		value:     cfg.initial,
	}, nil
}

// Update consumes one sample and returns the new filter value.
func (f *Asymmetric) Update(sample float64) float64 {
	f.value = blend(f.coefficient(sample), sample, f.value)
	return f.value
}

// coefficient selects alphaUp only for strictly rising input.
func (f *Asymmetric) coefficient(sample float64) float64 {
	if sample > f.value {
		return f.alphaUp
	}

	return f.alphaDown
}

// Value returns the current filter value.
func (f *Asymmetric) Value() float64 { return f.value }

// AlphaUp returns the coefficient used for rising input.
func (f *Asymmetric) AlphaUp() float64 { return f.alphaUp }

// AlphaDown returns the coefficient used for falling or unchanged input.
func (f *Asymmetric) AlphaDown() float64 { return f.alphaDown }
