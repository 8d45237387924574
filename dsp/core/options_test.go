package core

import (
	"testing"
	"time"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithTimeStep(50*time.Millisecond), WithDuration(2*time.Second))
	if cfg.TimeStep != 50*time.Millisecond {
		t.Fatalf("time step = %v, want 50ms", cfg.TimeStep)
	}
	if cfg.Duration != 2*time.Second {
		t.Fatalf("duration = %v, want 2s", cfg.Duration)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithTimeStep(0), WithDuration(-time.Second), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestSamples(t *testing.T) {
	tests := []struct {
		step, dur time.Duration
		want      int
	}{
		{100 * time.Millisecond, 4 * time.Second, 40},
		{300 * time.Millisecond, time.Second, 4},
		{time.Second, time.Second, 1},
		{0, time.Second, 0},
		{time.Second, 0, 0},
	}
	for _, tt := range tests {
		cfg := ProcessorConfig{TimeStep: tt.step, Duration: tt.dur}
		if got := cfg.Samples(); got != tt.want {
			t.Fatalf("Samples(%v, %v) = %d, want %d", tt.step, tt.dur, got, tt.want)
		}
	}
}

func TestSeconds(t *testing.T) {
	cfg := DefaultProcessorConfig()
	if got := cfg.Seconds(25); got != 2.5 {
		t.Fatalf("Seconds(25) = %v, want 2.5", got)
	}
}
