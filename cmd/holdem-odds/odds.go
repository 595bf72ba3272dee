package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-odds/cmd/holdem-odds/shared"
	"github.com/lox/holdem-odds/internal/config"
	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/equity"
	"github.com/lox/holdem-odds/internal/randutil"
	"github.com/lox/holdem-odds/internal/statistics"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	faintStyle = lipgloss.NewStyle().
			Faint(true)
)

// OddsCmd estimates win probability for known hole cards and board without
// playing through a hand.
type OddsCmd struct {
	Hand          string `arg:"" help:"Your hole cards (e.g. 'AsKd')" required:""`
	Board         string `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Players       int    `short:"p" default:"2" help:"Number of players at the table (2-6)"`
	Trials        int    `short:"i" help:"Number of Monte Carlo trials (overrides config)"`
	Seed          int64  `help:"Random seed for reproducible results (0 for time-based)"`
	CompleteBoard bool   `help:"Complete unseen board cards in each trial (overrides config)"`
}

func (c *OddsCmd) Run(globals *Globals) error {
	lipgloss.SetColorProfile(termenv.ColorProfile())

	cfg, err := config.Load(globals.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.Trials > 0 {
		cfg.Simulation.Trials = c.Trials
	}
	if c.CompleteBoard {
		cfg.Simulation.CompleteBoard = true
	}

	hole, err := deck.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("failed to parse hand: %w", err)
	}
	var board []deck.Card
	if c.Board != "" {
		if board, err = deck.ParseCards(c.Board); err != nil {
			return fmt.Errorf("failed to parse board: %w", err)
		}
	}

	logWriter := io.Writer(io.Discard)
	if globals.Debug {
		logWriter = os.Stderr
	}
	logger := shared.SetupLogger(logWriter, "debug", "odds")

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	sim := equity.New(equity.Config{
		Trials:        cfg.Simulation.Trials,
		Workers:       cfg.Simulation.Workers,
		CompleteBoard: cfg.Simulation.CompleteBoard,
		Logger:        logger,
	})

	result, err := sim.Estimate(context.Background(), hole, board, c.Players, rng)
	if err != nil {
		return err
	}

	displayResult(hole, board, c.Players, result)
	return nil
}

func displayResult(hole, board []deck.Card, players int, result equity.Result) {
	if len(board) > 0 {
		fmt.Printf("%s %s\n", headerStyle.Render("board"), deck.FormatCards(board))
	}
	fmt.Printf("%s %s vs %d opponents\n\n", headerStyle.Render("hand"), handStyle.Render(deck.FormatCards(hole)), players-1)

	proportion := statistics.Proportion{Successes: result.Wins, Trials: result.Total()}
	lo, hi := proportion.ConfidenceInterval95()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("win"),
		headerStyle.Render("95% CI"),
		headerStyle.Render("w/l/t"),
		headerStyle.Render("trials"))
	fmt.Fprintf(w, "%s\t%s\t%d/%d/%d\t%d\n",
		winStyle.Render(fmt.Sprintf("%d%%", result.Percent())),
		fmt.Sprintf("%.1f%% - %.1f%%", lo*100, hi*100),
		result.Wins, result.Losses, result.Ties,
		result.Trials)
	w.Flush()

	fmt.Printf("\n%s\n", faintStyle.Render(fmt.Sprintf("%d trials in %v",
		result.Trials, result.Elapsed.Truncate(time.Millisecond))))
}
