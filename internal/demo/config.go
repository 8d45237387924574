package demo

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// SignalConfig describes the synthetic step signal.
type SignalConfig struct {
	TimeStepMs     int       `yaml:"time_step_ms"`
	TotalTimeMs    int       `yaml:"total_time_ms"`
	ValueHigh      float64   `yaml:"value_high"`
	ValueLow       float64   `yaml:"value_low"`
	Transitions    []float64 `yaml:"transitions"`
	NoiseAmplitude float64   `yaml:"noise_amplitude"`
	Seed           int64     `yaml:"seed"`
}

// FilterConfig holds the smoothing coefficients of the compared filters.
type FilterConfig struct {
	EMAAlpha      float64 `yaml:"ema_alpha"`
	RMSAlpha      float64 `yaml:"rms_alpha"`
	AsymAlphaUp   float64 `yaml:"asym_alpha_up"`
	AsymAlphaDown float64 `yaml:"asym_alpha_down"`
	// Initial is the state every filter starts from. Nil means the signal's
	// low level.
	Initial *float64 `yaml:"initial,omitempty"`
}

// PlotConfig sizes the terminal chart.
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the full demo configuration.
type Config struct {
	Signal  SignalConfig `yaml:"signal"`
	Filters FilterConfig `yaml:"filters"`
	Plot    PlotConfig   `yaml:"plot"`
}

const (
	minPlotWidth  = 16
	minPlotHeight = 4

	// MaxSamples bounds the number of rows a single run may produce.
	MaxSamples = 1_000_000

	// maxTimeMs is the largest millisecond count representable as a
	// time.Duration.
	maxTimeMs = math.MaxInt64 / int64(time.Millisecond)
)

// DefaultConfig returns the stock comparison: a 100/25 step signal sampled
// every 100 ms for 4 s, fast EMA and RMS filters, and a slow-rise,
// very-slow-fall asymmetric filter.
func DefaultConfig() Config {
	return Config{
		Signal: SignalConfig{
			TimeStepMs:  100,
			TotalTimeMs: 4000,
			ValueHigh:   100,
			ValueLow:    25,
			Transitions: []float64{2, 4, 10, 15},
			Seed:        1,
		},
		Filters: FilterConfig{
			EMAAlpha:      0.25,
			RMSAlpha:      0.25,
			AsymAlphaUp:   0.05,
			AsymAlphaDown: 0.005,
		},
		Plot: PlotConfig{
			Width:  72,
			Height: 18,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("demo: read config: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("demo: parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Initial returns the filter start value.
func (c Config) Initial() float64 {
	if c.Filters.Initial != nil {
		return *c.Filters.Initial
	}

	return c.Signal.ValueLow
}

// ProcessorOptions maps the signal timing onto the sampling grid.
func (c Config) ProcessorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{
		core.WithTimeStep(time.Duration(c.Signal.TimeStepMs) * time.Millisecond),
		core.WithDuration(time.Duration(c.Signal.TotalTimeMs) * time.Millisecond),
	}
}

// Validate reports every problem in the configuration, not just the first.
func (c Config) Validate() error {
	var errs error

	if c.Signal.TimeStepMs <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("signal.time_step_ms must be > 0: %d", c.Signal.TimeStepMs))
	}

	if c.Signal.TotalTimeMs <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("signal.total_time_ms must be > 0: %d", c.Signal.TotalTimeMs))
	}

	step, total := int64(c.Signal.TimeStepMs), int64(c.Signal.TotalTimeMs)
	switch {
	case step > maxTimeMs:
		errs = multierr.Append(errs, fmt.Errorf("signal.time_step_ms must be <= %d: %d", maxTimeMs, step))
	case total > maxTimeMs:
		errs = multierr.Append(errs, fmt.Errorf("signal.total_time_ms must be <= %d: %d", maxTimeMs, total))
	case step > 0 && total > 0 && (total+step-1)/step > MaxSamples:
		errs = multierr.Append(errs, fmt.Errorf("signal produces %d samples, limit is %d", (total+step-1)/step, MaxSamples))
	}

	if c.Signal.NoiseAmplitude < 0 {
		errs = multierr.Append(errs, fmt.Errorf("signal.noise_amplitude must be >= 0: %g", c.Signal.NoiseAmplitude))
	}

	if !core.IsFinite(c.Signal.ValueHigh) || !core.IsFinite(c.Signal.ValueLow) {
		errs = multierr.Append(errs, errors.New("signal levels must be finite"))
	}

	for _, spec := range Filters() {
		if _, err := spec.New(c); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("filters.%s: %w", spec.Key, err))
		}
	}

	if c.Plot.Width < minPlotWidth {
		errs = multierr.Append(errs, fmt.Errorf("plot.width must be >= %d: %d", minPlotWidth, c.Plot.Width))
	}

	if c.Plot.Height < minPlotHeight {
		errs = multierr.Append(errs, fmt.Errorf("plot.height must be >= %d: %d", minPlotHeight, c.Plot.Height))
	}

	return errs
}
