package core

import "time"

// ProcessorConfig defines the sampling grid shared by generators and demos.
type ProcessorConfig struct {
	// TimeStep is the interval between consecutive samples.
	TimeStep time.Duration
	// Duration is the total signal length. Samples are taken at
	// 0, TimeStep, 2*TimeStep, ... strictly before Duration.
	Duration time.Duration
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 100 ms grid over 4 s.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		TimeStep: 100 * time.Millisecond,
		Duration: 4 * time.Second,
	}
}

// WithTimeStep sets the sample interval.
func WithTimeStep(step time.Duration) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if step > 0 {
			cfg.TimeStep = step
		}
	}
}

// WithDuration sets the total signal length.
func WithDuration(d time.Duration) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if d > 0 {
			cfg.Duration = d
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Samples returns the number of grid points in [0, Duration).
func (cfg ProcessorConfig) Samples() int {
	if cfg.TimeStep <= 0 || cfg.Duration <= 0 {
		return 0
	}
	return int((cfg.Duration + cfg.TimeStep - 1) / cfg.TimeStep)
}

// Seconds returns the timestamp of sample i in seconds.
func (cfg ProcessorConfig) Seconds(i int) float64 {
	return (time.Duration(i) * cfg.TimeStep).Seconds()
}
