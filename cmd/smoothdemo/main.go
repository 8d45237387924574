// Command smoothdemo compares the smoothing filters on a synthetic step
// signal.
//
// Usage:
//
//	smoothdemo [flags]
//	smoothdemo filters
//
// It prints a terminal chart and a tracking-error summary, and optionally
// writes the full Time/Value/EMA/RMS/Asymmetric table as CSV.
//
// Examples:
//
//	smoothdemo
//	smoothdemo --config demo.yaml --csv out.csv
//	smoothdemo --no-plot --log-level debug
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
