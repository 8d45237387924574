package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Run feeds samples through s in order and returns every output.
func Run(s smooth.Smoother, samples []float64) []float64 {
	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = s.Update(x)
	}
	return out
}
