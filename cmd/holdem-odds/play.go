package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/holdem-odds/cmd/holdem-odds/shared"
	"github.com/lox/holdem-odds/internal/config"
	"github.com/lox/holdem-odds/internal/equity"
	"github.com/lox/holdem-odds/internal/game"
	"github.com/lox/holdem-odds/internal/randutil"
	"github.com/lox/holdem-odds/internal/tui"
)

// PlayCmd runs one interactive hand: hole cards are dealt to every player,
// the board comes out street by street, and the player folds or continues
// based on the estimated win probability.
type PlayCmd struct {
	Players       int   `short:"p" default:"2" help:"Number of players at the table (2-6)"`
	Seed          int64 `help:"Random seed (0 for time-based)"`
	Trials        int   `help:"Monte Carlo trials per street (overrides config)"`
	CompleteBoard bool  `help:"Complete unseen board cards in each trial (overrides config)"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	if c.Players < game.MinPlayers || c.Players > game.MaxPlayers {
		return fmt.Errorf("invalid number of players: %d (must be between %d and %d)",
			c.Players, game.MinPlayers, game.MaxPlayers)
	}

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

	// Log to a file so the TUI stays clean
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	level := cfg.Log.Level
	if globals.Debug {
		level = "debug"
	}
	logger := shared.SetupLogger(logFile, level, "play")

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Info("starting hand", "players", c.Players, "seed", seed, "trials", cfg.Simulation.Trials)

	g, err := game.New(c.Players, rng)
	if err != nil {
		return err
	}

	sim := equity.New(equity.Config{
		Trials:        cfg.Simulation.Trials,
		Workers:       cfg.Simulation.Workers,
		CompleteBoard: cfg.Simulation.CompleteBoard,
		Logger:        logger,
	})

	model := tui.NewModel(g, sim, rng, logger)
	program := tea.NewProgram(model)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
