package signal

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// ErrEmptyGrid is returned when the sampling grid holds no samples.
var ErrEmptyGrid = errors.New("signal: sampling grid is empty")

// Generator creates deterministic signals on a shared sampling grid.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Timestamps returns the time of every grid sample in seconds.
func (g *Generator) Timestamps() ([]float64, error) {
	n := g.cfg.Samples()
	if n <= 0 {
		return nil, ErrEmptyGrid
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.cfg.Seconds(i)
	}
	return out, nil
}

// Step generates a two-level step signal. It starts at high and toggles
// between high and low each time a transition time (in seconds) is reached:
// a sample at time t is low when an odd number of transitions are <= t.
// Transitions need not be sorted.
func (g *Generator) Step(high, low float64, transitions []float64) ([]float64, error) {
	times, err := g.Timestamps()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(times))
	for i, sec := range times {
		crossed := 0
		for _, t := range transitions {
			if sec >= t {
				crossed++
			}
		}
		if crossed%2 == 1 {
			out[i] = low
		} else {
			out[i] = high
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// NoisyStep is Step with seeded white noise of the given amplitude added.
// A zero amplitude returns the clean step.
func (g *Generator) NoisyStep(high, low float64, transitions []float64, amplitude float64) ([]float64, error) {
	out, err := g.Step(high, low, transitions)
	if err != nil {
		return nil, err
	}
	if amplitude == 0 {
		return out, nil
	}
	noise, err := g.WhiteNoise(amplitude, len(out))
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] += noise[i]
	}
	return out, nil
}
