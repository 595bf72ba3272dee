package statistics

import (
	"math"
	"testing"
)

func TestProportionEstimate(t *testing.T) {
	tests := []struct {
		name     string
		p        Proportion
		expected float64
	}{
		{name: "half", p: Proportion{Successes: 50, Trials: 100}, expected: 0.5},
		{name: "all", p: Proportion{Successes: 100, Trials: 100}, expected: 1},
		{name: "none", p: Proportion{Successes: 0, Trials: 100}, expected: 0},
		{name: "zero trials", p: Proportion{}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Estimate(); got != tt.expected {
				t.Errorf("Estimate() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestProportionStdError(t *testing.T) {
	p := Proportion{Successes: 50, Trials: 100}

	// sqrt(0.5 * 0.5 / 100) = 0.05
	if got := p.StdError(); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("StdError() = %v, want 0.05", got)
	}

	if got := (Proportion{}).StdError(); got != 0 {
		t.Errorf("StdError() with no trials = %v, want 0", got)
	}
}

func TestConfidenceInterval95(t *testing.T) {
	p := Proportion{Successes: 50, Trials: 100}
	lo, hi := p.ConfidenceInterval95()

	// 0.5 +/- 1.96 * 0.05
	if math.Abs(lo-0.402) > 1e-12 {
		t.Errorf("lower = %v, want 0.402", lo)
	}
	if math.Abs(hi-0.598) > 1e-12 {
		t.Errorf("upper = %v, want 0.598", hi)
	}
}

func TestConfidenceInterval95Clamped(t *testing.T) {
	lo, hi := Proportion{Successes: 99, Trials: 100}.ConfidenceInterval95()
	if hi > 1 {
		t.Errorf("upper bound %v should be clamped to 1", hi)
	}
	if lo < 0 {
		t.Errorf("lower bound %v should not be negative", lo)
	}

	lo, hi = Proportion{Successes: 1, Trials: 100}.ConfidenceInterval95()
	if lo < 0 {
		t.Errorf("lower bound %v should be clamped to 0", lo)
	}
	if hi > 1 {
		t.Errorf("upper bound %v should not exceed 1", hi)
	}
}
