package demo

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Summary describes how closely one filter tracked the raw input.
type Summary struct {
	Name        string
	Final       float64
	RMSError    float64
	MaxAbsError float64
}

// Summarize computes per-filter tracking statistics against the Value column.
// Columns whose length differs from Value are skipped.
func Summarize(t *Table) []Summary {
	n := t.Len()
	out := make([]Summary, 0, len(t.names))
	if n == 0 {
		return out
	}

	diff := make([]float64, n)
	sq := make([]float64, n)
	for j, name := range t.names {
		s := t.series[j]

		maxAbs, err := core.MaxAbsDiff(s, t.Value)
		if err != nil {
			continue
		}

		for i := range diff {
			diff[i] = s[i] - t.Value[i]
		}

		vecmath.MulBlock(sq, diff, diff)

		sum := 0.0
		for _, v := range sq {
			sum += v
		}

		out = append(out, Summary{
			Name:        name,
			Final:       s[n-1],
			RMSError:    math.Sqrt(sum / float64(n)),
			MaxAbsError: maxAbs,
		})
	}

	return out
}

// WriteSummary prints summaries as an aligned table.
func WriteSummary(w io.Writer, summaries []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tFinal\tRMS Error\tMax |Error|\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t---------\t-----------\n"); err != nil {
		return err
	}

	for _, s := range summaries {
		if _, err := fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\n", s.Name, s.Final, s.RMSError, s.MaxAbsError); err != nil {
			return err
		}
	}

	return tw.Flush()
}
