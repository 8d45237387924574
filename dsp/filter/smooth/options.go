package smooth

// Option mutates constructor configuration.
type Option func(*config)

type config struct {
	initial float64
}

func defaultConfig() config {
	return config{initial: 0}
}

// WithInitial sets the filter state before the first update. Defaults to 0.
func WithInitial(value float64) Option {
	return func(cfg *config) {
		cfg.initial = value
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
