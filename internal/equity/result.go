package equity

import "time"

// Result holds the outcome counters accumulated over a simulation run.
// Every trial contributes exactly one win, loss or tie observation.
type Result struct {
	Wins   int
	Losses int
	Ties   int

	Trials  int
	Elapsed time.Duration
}

// Total returns the number of classified trials
func (r Result) Total() int {
	return r.Wins + r.Losses + r.Ties
}

// Percent returns the win probability as an integer percentage in [0,100],
// floor(100 * wins / total).
func (r Result) Percent() int {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return r.Wins * 100 / total
}

// WinRate returns the win probability as a fraction in [0,1]
func (r Result) WinRate() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total)
}

func (r Result) add(other Result) Result {
	r.Wins += other.Wins
	r.Losses += other.Losses
	r.Ties += other.Ties
	r.Trials += other.Trials
	return r
}
