package demo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestEngineDefaultRun(t *testing.T) {
	e, err := NewEngine(DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	table, err := e.Run()
	require.NoError(t, err)

	require.Equal(t, 40, table.Len())
	assert.Equal(t, []string{"Time", "Value", "EMA", "RMS", "Asymmetric"}, table.Columns())

	for i, v := range table.Value {
		want := 100.0
		if i >= 20 {
			want = 25
		}
		require.Equal(t, want, v, "sample %d", i)
	}

	ema, ok := table.Series("EMA")
	require.True(t, ok)
	testutil.RequireSliceNearlyEqual(t, ema[:4], []float64{43.75, 57.8125, 68.359375, 76.26953125}, 1e-12)

	rms, ok := table.Series("RMS")
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt(0.25*100*100+0.75*25*25), rms[0], 1e-12)
	testutil.RequireNonNegative(t, rms)

	asym, ok := table.Series("Asymmetric")
	require.True(t, ok)
	assert.InDelta(t, 28.75, asym[0], 1e-12)

	for _, name := range table.Names() {
		s, _ := table.Series(name)
		testutil.RequireFinite(t, s)
	}
}

func TestEngineMatchesStandaloneFilters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Signal.NoiseAmplitude = 10
	cfg.Signal.Seed = 42

	e, err := NewEngine(cfg, nil)
	require.NoError(t, err)

	table, err := e.Run()
	require.NoError(t, err)

	f, err := smooth.NewAsymmetric(0.05, 0.005, smooth.WithInitial(25))
	require.NoError(t, err)

	got, _ := table.Series("Asymmetric")
	testutil.RequireSliceNearlyEqual(t, got, testutil.Run(f, table.Value), 0)
}

func TestFiltersOnNoisyInput(t *testing.T) {
	noise := testutil.DeterministicNoise(11, 50, 500)

	for _, spec := range Filters() {
		s, err := spec.New(DefaultConfig())
		require.NoError(t, err)

		out := testutil.Run(s, noise)
		testutil.RequireFinite(t, out)
		if spec.Name == "RMS" {
			testutil.RequireNonNegative(t, out)
		}
	}
}

func TestEngineKeepsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Plot.Width = 30

	e, err := NewEngine(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, e.Config().Plot.Width)
}

func TestEngineRunsAreRepeatable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Signal.NoiseAmplitude = 3

	e, err := NewEngine(cfg, nil)
	require.NoError(t, err)

	a, err := e.Run()
	require.NoError(t, err)

	b, err := e.Run()
	require.NoError(t, err)

	for _, name := range a.Columns() {
		sa, _ := a.Series(name)
		sb, _ := b.Series(name)
		testutil.RequireSliceNearlyEqual(t, sa, sb, 0)
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Filters.RMSAlpha = 2

	_, err := NewEngine(cfg, nil)
	require.ErrorIs(t, err, smooth.ErrInvalidParameter)
}
