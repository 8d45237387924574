package smooth

// Smoother is a stateful scalar filter: one sample in, one smoothed value out.
type Smoother interface {
	// Update consumes sample and returns the new filter value.
	Update(sample float64) float64
	// Value returns the current filter value without changing it.
	Value() float64
}

var (
	_ Smoother = (*EMA)(nil)
	_ Smoother = (*RMS)(nil)
	_ Smoother = (*Asymmetric)(nil)
)

// blend is the EMA recurrence shared by EMA and Asymmetric.
func blend(alpha, sample, value float64) float64 {
	return alpha*sample + (1-alpha)*value
}
