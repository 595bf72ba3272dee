// Package game drives a single hand of Texas Hold'em against unknown
// opponents: all hole cards are dealt up front from one shuffled deck, the
// board is revealed street by street, and the showdown compares the full
// seven-card hands.
package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/evaluator"
)

// Street is a betting street
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the street name
func (s Street) String() string {
	switch s {
	case Preflop:
		return "Preflop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	default:
		return "Unknown"
	}
}

// ErrHandOver is returned when the hand has already ended (fold or river).
var ErrHandOver = errors.New("hand is over")

// MinPlayers and MaxPlayers bound the supported table size
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// Game holds the state of one hand. The player sits at index 0.
type Game struct {
	deck      *deck.Deck
	hands     [][]deck.Card
	community []deck.Card
	street    Street
	folded    bool
}

// New deals a fresh hand for numPlayers players from a newly shuffled deck.
func New(numPlayers int, rng *rand.Rand) (*Game, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("players: got %d, want %d-%d", numPlayers, MinPlayers, MaxPlayers)
	}

	d := deck.NewShuffledDeck(rng)
	hands := make([][]deck.Card, numPlayers)
	for i := range hands {
		hands[i] = d.DealN(2)
	}

	return &Game{
		deck:      d,
		hands:     hands,
		community: make([]deck.Card, 0, 5),
		street:    Preflop,
	}, nil
}

// NumPlayers returns the number of players dealt in
func (g *Game) NumPlayers() int {
	return len(g.hands)
}

// PlayerHand returns the player's hole cards
func (g *Game) PlayerHand() []deck.Card {
	return g.hands[0]
}

// OpponentHands returns every opponent's hole cards
func (g *Game) OpponentHands() [][]deck.Card {
	return g.hands[1:]
}

// Community returns the community cards revealed so far
func (g *Game) Community() []deck.Card {
	return g.community
}

// Street returns the current betting street
func (g *Game) Street() Street {
	return g.street
}

// Folded reports whether the player has folded
func (g *Game) Folded() bool {
	return g.folded
}

// Fold ends the hand with the player out
func (g *Game) Fold() {
	g.folded = true
}

// NextStreet reveals the next community cards (flop 3, turn 1, river 1)
// and returns the newly dealt cards.
func (g *Game) NextStreet() ([]deck.Card, error) {
	if g.folded || g.street == River {
		return nil, ErrHandOver
	}

	count := 1
	if g.street == Preflop {
		count = 3
	}
	dealt := g.deck.DealN(count)
	g.community = append(g.community, dealt...)
	g.street++
	return dealt, nil
}

// Showdown compares the player's hand to every opponent's over the full
// board and returns the winning opponent index, or evaluator.PlayerWins.
// It is only valid once the river is out and the player has not folded.
func (g *Game) Showdown() (int, error) {
	if g.folded {
		return 0, ErrHandOver
	}
	if g.street != River {
		return 0, fmt.Errorf("showdown before river (street: %s)", g.street)
	}
	return evaluator.FindWinner(g.PlayerHand(), g.OpponentHands(), g.community), nil
}
