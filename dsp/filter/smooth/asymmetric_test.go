package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsymmetricDefaultInitialIsZero(t *testing.T) {
	f, err := NewAsymmetric(0.5, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.Value())
}

func TestAsymmetricRiseThenFall(t *testing.T) {
	f, err := NewAsymmetric(0.5, 0.1, WithInitial(10))
	require.NoError(t, err)

	assert.InDelta(t, 15.0, f.Update(20), 1e-12)
	assert.InDelta(t, 14.0, f.Update(5), 1e-12)
}

func TestAsymmetricUsesUpWhenRising(t *testing.T) {
	f, err := NewAsymmetric(0.5, 0.1, WithInitial(25))
	require.NoError(t, err)
	assert.InDelta(t, 62.5, f.Update(100), 1e-12)
}

func TestAsymmetricUsesDownWhenFalling(t *testing.T) {
	f, err := NewAsymmetric(0.5, 0.1, WithInitial(100))
	require.NoError(t, err)
	assert.InDelta(t, 92.5, f.Update(25), 1e-12)
}

func TestAsymmetricTieTakesDownBranch(t *testing.T) {
	f, err := NewAsymmetric(0.9, 0.1, WithInitial(50))
	require.NoError(t, err)

	assert.Equal(t, 0.1, f.coefficient(50))
	assert.Equal(t, 0.9, f.coefficient(50.000001))
	assert.Equal(t, 0.1, f.coefficient(49.999999))

	want := blend(0.1, 50, 50)
	assert.Equal(t, want, f.Update(50))
}

func TestAsymmetricStatePersists(t *testing.T) {
	f, err := NewAsymmetric(0.5, 0.1, WithInitial(25))
	require.NoError(t, err)

	assert.InDelta(t, 62.5, f.Update(100), 1e-12)
	assert.InDelta(t, 58.75, f.Update(25), 1e-12)
}

func TestAsymmetricRiseFasterThanFall(t *testing.T) {
	rise, err := NewAsymmetric(0.5, 0.05)
	require.NoError(t, err)

	fall, err := NewAsymmetric(0.5, 0.05, WithInitial(100))
	require.NoError(t, err)

	for range 10 {
		rise.Update(100)
		fall.Update(0)
	}

	gapRise := 100 - rise.Value()
	gapFall := fall.Value()
	assert.Less(t, gapRise, gapFall)
}

func TestAsymmetricEqualRatesMatchEMA(t *testing.T) {
	asym, err := NewAsymmetric(0.3, 0.3, WithInitial(5))
	require.NoError(t, err)

	ema, err := NewEMA(0.3, WithInitial(5))
	require.NoError(t, err)

	for _, x := range []float64{10, -4, 7, 7, 100, 0.5} {
		assert.Equal(t, ema.Update(x), asym.Update(x))
	}
}
