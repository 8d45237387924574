package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
	"github.com/cwbudde/algo-smooth/dsp/signal"
)

// Engine runs a configured comparison.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine validates cfg and returns an engine. A nil logger is replaced by
// a no-op logger.
func NewEngine(cfg Config, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("demo: invalid config: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{cfg: cfg, logger: logger}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Run generates the input signal and filters it. Every filter is freshly
// constructed, so repeated runs return identical tables.
func (e *Engine) Run() (*Table, error) {
	sig := e.cfg.Signal
	gen := signal.NewGeneratorWithOptions(e.cfg.ProcessorOptions(), signal.WithSeed(sig.Seed))

	times, err := gen.Timestamps()
	if err != nil {
		return nil, fmt.Errorf("demo: timestamps: %w", err)
	}

	values, err := gen.NoisyStep(sig.ValueHigh, sig.ValueLow, sig.Transitions, sig.NoiseAmplitude)
	if err != nil {
		return nil, fmt.Errorf("demo: generate signal: %w", err)
	}

	grid := gen.Config()
	e.logger.Info("generated step signal",
		zap.Int("samples", len(values)),
		zap.Duration("time_step", grid.TimeStep),
		zap.Duration("duration", grid.Duration),
		zap.Int64("seed", gen.Seed()),
		zap.Float64s("transitions", sig.Transitions),
		zap.Float64("noise_amplitude", sig.NoiseAmplitude),
	)

	specs := Filters()
	names := make([]string, len(specs))
	smoothers := make([]smooth.Smoother, len(specs))
	for i, spec := range specs {
		s, err := spec.New(e.cfg)
		if err != nil {
			return nil, fmt.Errorf("demo: build %s filter: %w", spec.Name, err)
		}
		names[i] = spec.Name
		smoothers[i] = s
	}

	table, err := NewTable(times, values, names...)
	if err != nil {
		return nil, err
	}

	for i, x := range values {
		for j, s := range smoothers {
			table.series[j][i] = s.Update(x)
		}
	}

	for j, s := range smoothers {
		e.logger.Debug("filter finished",
			zap.String("filter", names[j]),
			zap.Float64("final", s.Value()),
		)
	}

	return table, nil
}
