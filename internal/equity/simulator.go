// Package equity estimates a player's chance of winning a Texas Hold'em
// hand by Monte Carlo simulation: unknown opponent cards (and, optionally,
// the unseen part of the board) are completed at random from the cards not
// already committed, every hand is evaluated, and outcome frequencies are
// aggregated into a win percentage.
package equity

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/evaluator"
)

// DefaultTrials is the fixed trial count used when none is configured.
const DefaultTrials = 10000

// maxWorkers caps the worker pool; more shows diminishing returns.
const maxWorkers = 8

// batchSize is how many trials a worker runs between cancellation checks.
const batchSize = 256

// ErrDeckExhausted is returned when a simulation would need more cards than
// remain in the 52-card domain. It cannot occur for the documented input
// range (at most 6 players and 5 community cards).
var ErrDeckExhausted = errors.New("deck exhausted: not enough cards remain to deal")

// Config holds simulator configuration. The zero value gets sensible
// defaults from New.
type Config struct {
	// Trials is the number of independent simulation trials.
	Trials int
	// Workers is the number of parallel workers. 1 forces a fully
	// sequential run.
	Workers int
	// CompleteBoard fills the unseen community cards randomly each trial.
	// When false, equity is computed against the known board only, which
	// understates preflop/flop/turn equity but matches the original
	// behaviour this simulator was ported from.
	CompleteBoard bool
	// Clock is used to measure elapsed time; defaults to the real clock.
	Clock quartz.Clock
	// Logger receives debug output; defaults to a discarding logger.
	Logger *log.Logger
}

// Simulator runs Monte Carlo win-probability estimates
type Simulator struct {
	cfg Config
}

// New creates a simulator, applying defaults for unset config fields.
func New(cfg Config) *Simulator {
	if cfg.Trials <= 0 {
		cfg.Trials = DefaultTrials
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Workers > maxWorkers {
		cfg.Workers = maxWorkers
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Simulator{cfg: cfg}
}

// Estimate computes the player's win probability holding hole against
// numPlayers-1 unknown opponents, given the community cards revealed so far
// (0, 3, 4 or 5). The rng drives the whole run; workers derive independent
// generators from it, so a fixed seed gives reproducible results for a fixed
// worker count.
func (s *Simulator) Estimate(ctx context.Context, hole, community []deck.Card, numPlayers int, rng *rand.Rand) (Result, error) {
	if err := validateInputs(hole, community, numPlayers); err != nil {
		return Result{}, err
	}

	used := deck.NewCardSet(hole, community)
	available := used.Available()

	needed := 2 * (numPlayers - 1)
	if s.cfg.CompleteBoard {
		needed += 5 - len(community)
	}
	if needed > len(available) {
		return Result{}, ErrDeckExhausted
	}

	start := s.cfg.Clock.Now()

	var result Result
	var err error
	if s.cfg.Workers == 1 || s.cfg.Trials < 2*batchSize {
		result, err = s.runWorker(ctx, hole, community, available, numPlayers, s.cfg.Trials, rng)
	} else {
		result, err = s.runParallel(ctx, hole, community, available, numPlayers, rng)
	}
	if err != nil {
		return Result{}, err
	}

	result.Elapsed = s.cfg.Clock.Since(start)
	s.cfg.Logger.Debug("simulation complete",
		"trials", result.Trials,
		"wins", result.Wins,
		"losses", result.Losses,
		"ties", result.Ties,
		"elapsed", result.Elapsed)
	return result, nil
}

// runParallel partitions the trial count across workers, each with an
// independent generator and local counters, and sums the counters after the
// join. No locking is needed during simulation.
func (s *Simulator) runParallel(ctx context.Context, hole, community, available []deck.Card, numPlayers int, rng *rand.Rand) (Result, error) {
	workers := s.cfg.Workers
	perWorker := s.cfg.Trials / workers
	remainder := s.cfg.Trials % workers

	results := make([]Result, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		seed := rng.Int64()
		g.Go(func() error {
			workerRng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
			result, err := s.runWorker(ctx, hole, community, available, numPlayers, trials, workerRng)
			if err != nil {
				return err
			}
			results[w] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, r := range results {
		total = total.add(r)
	}
	return total, nil
}

// runWorker runs trials sequentially with trial-local state. Each trial
// partially shuffles a scratch copy of the available cards, deals two cards
// per opponent (and the board completion when enabled), and classifies the
// outcome with the multi-way winner rule.
func (s *Simulator) runWorker(ctx context.Context, hole, community, available []deck.Card, numPlayers, trials int, rng *rand.Rand) (Result, error) {
	numOpponents := numPlayers - 1
	boardFill := 0
	if s.cfg.CompleteBoard {
		boardFill = 5 - len(community)
	}

	scratch := make([]deck.Card, len(available))

	opponentBacking := make([]deck.Card, 2*numOpponents)
	opponentHoles := make([][]deck.Card, numOpponents)
	for i := range opponentHoles {
		opponentHoles[i] = opponentBacking[2*i : 2*i+2]
	}

	board := make([]deck.Card, len(community), 5)
	copy(board, community)

	result := Result{}
	for done := 0; done < trials; {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		batch := trials - done
		if batch > batchSize {
			batch = batchSize
		}

		for i := 0; i < batch; i++ {
			copy(scratch, available)
			drawn := draw(scratch, 2*numOpponents+boardFill, rng)
			copy(opponentBacking, drawn[:2*numOpponents])
			board = append(board[:len(community)], drawn[2*numOpponents:]...)

			if evaluator.FindWinner(hole, opponentHoles, board) == evaluator.PlayerWins {
				result.Wins++
			} else {
				result.Losses++
			}
			result.Trials++
		}
		done += batch
	}
	return result, nil
}

// draw moves n uniformly chosen cards to the front of scratch and returns
// them (a partial Fisher-Yates pass).
func draw(scratch []deck.Card, n int, rng *rand.Rand) []deck.Card {
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(scratch)-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:n]
}

func validateInputs(hole, community []deck.Card, numPlayers int) error {
	if len(hole) != 2 {
		return fmt.Errorf("hole cards: got %d, want 2", len(hole))
	}
	switch len(community) {
	case 0, 3, 4, 5:
	default:
		return fmt.Errorf("community cards: got %d, want 0, 3, 4 or 5", len(community))
	}
	if numPlayers < 2 || numPlayers > 6 {
		return fmt.Errorf("players: got %d, want 2-6", numPlayers)
	}
	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	if err := evaluator.ValidateHand(all); err != nil {
		return err
	}
	return nil
}
