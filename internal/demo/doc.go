// Package demo runs the step-signal filter comparison: it generates a
// synthetic two-level signal, feeds it through every registered smoother one
// sample at a time, and stores the results in a table that can be written as
// CSV, drawn as a terminal chart, or reduced to tracking-error statistics.
package demo
