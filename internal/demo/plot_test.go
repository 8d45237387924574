package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartRender(t *testing.T) {
	e, err := NewEngine(DefaultConfig(), nil)
	require.NoError(t, err)

	table, err := e.Run()
	require.NoError(t, err)

	out := Chart{Width: 40, Height: 10}.Render(table)

	for _, want := range []string{chartTitle, "Input", "EMA", "RMS", "Asymmetric", "Time (s)", "Value", "100.0", "25.0"} {
		assert.Contains(t, out, want)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 10+6)
}

func TestChartRenderEmpty(t *testing.T) {
	table, err := NewTable(nil, nil)
	require.NoError(t, err)

	out := Chart{Width: 40, Height: 10}.Render(table)
	assert.Contains(t, out, "no samples")
}

func TestRowFor(t *testing.T) {
	assert.Equal(t, 0, rowFor(100, 25, 100, 10))
	assert.Equal(t, 9, rowFor(25, 25, 100, 10))
	assert.Equal(t, 5, rowFor(7, 7, 7, 10))
	assert.Equal(t, 9, rowFor(-1e9, 25, 100, 10))
}

func TestSampleIndex(t *testing.T) {
	assert.Equal(t, 0, sampleIndex(0, 40, 40))
	assert.Equal(t, 39, sampleIndex(39, 40, 40))
	assert.Equal(t, 0, sampleIndex(5, 40, 1))
}
