// Package tui implements the interactive Bubble Tea front end for playing a
// hand against simulated opponents: it reveals the board street by street,
// shows the estimated win probability at each street, and asks the player to
// fold or continue.
package tui

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/equity"
	"github.com/lox/holdem-odds/internal/evaluator"
	"github.com/lox/holdem-odds/internal/game"
)

type phase int

const (
	phaseSimulating phase = iota
	phaseAwaitingAction
	phaseShowdown
	phaseFinished
)

type equityMsg struct {
	street game.Street
	result equity.Result
}

type errMsg struct {
	err error
}

// Model is the Bubble Tea model for one interactive hand
type Model struct {
	game   *game.Game
	sim    *equity.Simulator
	rng    *rand.Rand
	logger *log.Logger
	styles *Styles
	spin   spinner.Model

	phase  phase
	lines  []string
	winner int
	folded bool
	err    error
}

// NewModel creates the model for a freshly dealt game
func NewModel(g *game.Game, sim *equity.Simulator, rng *rand.Rand, logger *log.Logger) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		game:   g,
		sim:    sim,
		rng:    rng,
		logger: logger,
		styles: DefaultStyles(),
		spin:   spin,
		phase:  phaseSimulating,
	}
}

// Folded reports whether the player folded out of the hand
func (m Model) Folded() bool {
	return m.folded
}

// Err returns the error that ended the session, if any
func (m Model) Err() error {
	return m.err
}

// Init kicks off the preflop equity estimate
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.estimateCmd())
}

// estimateCmd runs the simulator for the current street in the background
func (m Model) estimateCmd() tea.Cmd {
	street := m.game.Street()
	hole := m.game.PlayerHand()
	community := m.game.Community()
	numPlayers := m.game.NumPlayers()
	rng := m.rng

	return func() tea.Msg {
		result, err := m.sim.Estimate(context.Background(), hole, community, numPlayers, rng)
		if err != nil {
			return errMsg{err: err}
		}
		return equityMsg{street: street, result: result}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.phase != phaseSimulating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case equityMsg:
		m.logger.Info("equity estimated",
			"street", msg.street,
			"percent", msg.result.Percent(),
			"trials", msg.result.Trials,
			"elapsed", msg.result.Elapsed)
		m.lines = append(m.lines, fmt.Sprintf("%s: %s win probability against %d opponents",
			msg.street,
			m.styles.Equity.Render(fmt.Sprintf("%d%%", msg.result.Percent())),
			m.game.NumPlayers()-1))

		if msg.street == game.River {
			return m.runShowdown()
		}
		m.phase = phaseAwaitingAction
		return m, nil

	case errMsg:
		m.err = msg.err
		m.phase = phaseFinished
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := strings.ToLower(msg.String())

	if key == "ctrl+c" || key == "q" {
		m.phase = phaseFinished
		return m, tea.Quit
	}

	switch m.phase {
	case phaseAwaitingAction:
		switch key {
		case "f":
			m.game.Fold()
			m.folded = true
			m.lines = append(m.lines, "You have folded. The game ends here.")
			m.phase = phaseFinished
			return m, tea.Quit
		case "c", "enter":
			if _, err := m.game.NextStreet(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.phase = phaseSimulating
			return m, tea.Batch(m.spin.Tick, m.estimateCmd())
		}
	case phaseShowdown:
		m.phase = phaseFinished
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) runShowdown() (tea.Model, tea.Cmd) {
	winner, err := m.game.Showdown()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.winner = winner

	for i, hand := range m.game.OpponentHands() {
		m.lines = append(m.lines, fmt.Sprintf("Bot %d shows %s (%s)",
			i+2, m.renderCards(hand), evaluator.EvaluateHand(hand, m.game.Community())))
	}
	if winner == evaluator.PlayerWins {
		m.lines = append(m.lines, m.styles.Win.Render("** You win **"))
	} else {
		m.lines = append(m.lines, m.styles.Lose.Render(fmt.Sprintf("** Bot %d wins **", winner+2)))
	}
	m.phase = phaseShowdown
	return m, nil
}

// View renders the current game state
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(" ♠ ♥ Texas Hold'em Odds ♦ ♣ "))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Header.Render("Your hand: "))
	b.WriteString(m.renderCards(m.game.PlayerHand()))
	b.WriteString("\n")

	if community := m.game.Community(); len(community) > 0 {
		b.WriteString(m.styles.Header.Render("Board:     "))
		b.WriteString(m.renderCards(community))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch m.phase {
	case phaseSimulating:
		b.WriteString(fmt.Sprintf("%s estimating odds...\n", m.spin.View()))
	case phaseAwaitingAction:
		b.WriteString(m.styles.Prompt.Render("(F)old, (C)ontinue or (Q)uit?"))
		b.WriteString("\n")
	case phaseShowdown:
		b.WriteString(m.styles.Faint.Render("press any key to exit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderCards(cards []deck.Card) string {
	var parts []string
	for _, card := range cards {
		style := m.styles.BlackCard
		if card.IsRed() {
			style = m.styles.RedCard
		}
		parts = append(parts, style.Render(card.String()))
	}
	return strings.Join(parts, " ")
}
