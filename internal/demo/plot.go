package demo

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

const chartTitle = "Analog Filter Comparison"

type seriesStyle struct {
	glyph rune
	style lipgloss.Style
}

// Input first, then one entry per filter; extra filters cycle.
var seriesStyles = []seriesStyle{
	{'.', lipgloss.NewStyle().Foreground(lipgloss.Color("245"))},
	{'*', lipgloss.NewStyle().Foreground(lipgloss.Color("39"))},
	{'+', lipgloss.NewStyle().Foreground(lipgloss.Color("214"))},
	{'o', lipgloss.NewStyle().Foreground(lipgloss.Color("42"))},
	{'x', lipgloss.NewStyle().Foreground(lipgloss.Color("170"))},
}

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleAxis  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Chart renders a table as a terminal line chart.
type Chart struct {
	Width  int
	Height int
}

// Render draws Value and every filter column against Time. Later series are
// drawn over earlier ones where they share a cell.
func (c Chart) Render(t *Table) string {
	width := max(c.Width, minPlotWidth)
	height := max(c.Height, minPlotHeight)

	var b strings.Builder
	b.WriteString(styleTitle.Render(chartTitle))
	b.WriteByte('\n')

	n := t.Len()
	if n == 0 {
		b.WriteString("(no samples)\n")
		return b.String()
	}

	series := make([][]float64, 0, 1+len(t.series))
	series = append(series, t.Value)
	series = append(series, t.series...)

	lo, hi := valueRange(series)

	grid := make([][]int, height)
	for r := range grid {
		grid[r] = make([]int, width)
		for col := range grid[r] {
			grid[r][col] = -1
		}
	}

	for k, s := range series {
		for col := 0; col < width; col++ {
			v := s[sampleIndex(col, width, n)]
			if !core.IsFinite(v) {
				continue
			}
			grid[rowFor(v, lo, hi, height)][col] = k
		}
	}

	const labelWidth = 8
	b.WriteString(styleAxis.Render(fmt.Sprintf("%*s", labelWidth, valueColumn)))
	b.WriteByte('\n')

	for r, row := range grid {
		label := strings.Repeat(" ", labelWidth)
		switch r {
		case 0:
			label = fmt.Sprintf("%*.1f", labelWidth, hi)
		case height - 1:
			label = fmt.Sprintf("%*.1f", labelWidth, lo)
		}
		b.WriteString(styleAxis.Render(label + " |"))
		for _, k := range row {
			if k < 0 {
				b.WriteByte(' ')
				continue
			}
			st := seriesStyles[k%len(seriesStyles)]
			b.WriteString(st.style.Render(string(st.glyph)))
		}
		b.WriteByte('\n')
	}

	axis := strings.Repeat(" ", labelWidth) + " +" + strings.Repeat("-", width)
	b.WriteString(styleAxis.Render(axis))
	b.WriteByte('\n')

	first := fmt.Sprintf("%.1f", t.Time[0])
	last := fmt.Sprintf("%.1f", t.Time[n-1])
	gap := max(width-len(first)-len(last), 1)
	b.WriteString(styleAxis.Render(strings.Repeat(" ", labelWidth+2) + first + strings.Repeat(" ", gap) + last))
	b.WriteByte('\n')
	b.WriteString(styleAxis.Render(strings.Repeat(" ", labelWidth+2) + "Time (s)"))
	b.WriteByte('\n')

	names := append([]string{"Input"}, t.names...)
	legend := make([]string, len(names))
	for k, name := range names {
		st := seriesStyles[k%len(seriesStyles)]
		legend[k] = st.style.Render(string(st.glyph) + " " + name)
	}
	b.WriteString(strings.Join(legend, "   "))
	b.WriteByte('\n')

	return b.String()
}

// sampleIndex maps a chart column onto a sample, spreading samples evenly.
func sampleIndex(col, width, n int) int {
	if n == 1 || width == 1 {
		return 0
	}
	return col * (n - 1) / (width - 1)
}

func rowFor(v, lo, hi float64, height int) int {
	if core.NearlyEqual(hi, lo, 0) {
		return height / 2
	}
	pos := (hi - v) / (hi - lo) * float64(height-1)
	return int(core.Clamp(math.Round(pos), 0, float64(height-1)))
}

func valueRange(series [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if !core.IsFinite(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}
