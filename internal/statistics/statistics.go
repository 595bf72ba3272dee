// Package statistics provides binomial proportion statistics for Monte
// Carlo win-rate estimates.
package statistics

import "math"

// Proportion summarises successes observed over a number of independent
// trials.
type Proportion struct {
	Successes int
	Trials    int
}

// Estimate returns the observed success fraction
func (p Proportion) Estimate() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Successes) / float64(p.Trials)
}

// StdError returns the standard error of the estimated proportion
func (p Proportion) StdError() float64 {
	if p.Trials == 0 {
		return 0
	}
	est := p.Estimate()
	return math.Sqrt(est * (1 - est) / float64(p.Trials))
}

// ConfidenceInterval95 returns the normal-approximation 95% confidence
// interval for the proportion, clamped to [0,1].
func (p Proportion) ConfidenceInterval95() (float64, float64) {
	est := p.Estimate()
	margin := 1.96 * p.StdError()
	return clamp01(est - margin), clamp01(est + margin)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
