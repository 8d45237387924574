package demo

import "github.com/cwbudde/algo-smooth/dsp/filter/smooth"

// FilterSpec describes one compared filter and how to build it from a Config.
type FilterSpec struct {
	// Name is the table column and legend label.
	Name string
	// Key names the config field(s) the filter reads.
	Key         string
	Description string
	New         func(Config) (smooth.Smoother, error)
}

// Filters returns the compared filters in table column order.
func Filters() []FilterSpec {
	return []FilterSpec{
		{
			Name:        "EMA",
			Key:         "ema_alpha",
			Description: "exponential moving average",
			New: func(c Config) (smooth.Smoother, error) {
				f, err := smooth.NewEMA(c.Filters.EMAAlpha, smooth.WithInitial(c.Initial()))
				if err != nil {
					return nil, err
				}

				return f, nil
			},
		},
		{
			Name:        "RMS",
			Key:         "rms_alpha",
			Description: "exponential average of squared samples, square-rooted",
			New: func(c Config) (smooth.Smoother, error) {
				f, err := smooth.NewRMS(c.Filters.RMSAlpha, smooth.WithInitial(c.Initial()))
				if err != nil {
					return nil, err
				}

				return f, nil
			},
		},
		{
			Name:        "Asymmetric",
			Key:         "asym_alpha_up/asym_alpha_down",
			Description: "EMA with separate rise and fall coefficients",
			New: func(c Config) (smooth.Smoother, error) {
				f, err := smooth.NewAsymmetric(c.Filters.AsymAlphaUp, c.Filters.AsymAlphaDown, smooth.WithInitial(c.Initial()))
				if err != nil {
					return nil, err
				}

				return f, nil
			},
		},
	}
}
