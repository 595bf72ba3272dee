package evaluator

import (
	"errors"
	rand "math/rand/v2"
	"testing"

	"github.com/lox/holdem-odds/internal/deck"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected HandStrength
	}{
		{
			name:     "four of a kind",
			cards:    "7c7d7s7h2c",
			expected: HandStrength{Level: FourOfAKind, Primary: deck.Seven, Secondary: deck.NoRank},
		},
		{
			name:     "full house",
			cards:    "QsQhQd5c5d9h2s",
			expected: HandStrength{Level: FullHouse, Primary: deck.Queen, Secondary: deck.Five},
		},
		{
			name:  "flush primary is highest rank overall",
			cards: "2s5s7s9sJsAh",
			// The simplified flush rule takes the highest rank in the
			// whole hand, not the highest spade.
			expected: HandStrength{Level: Flush, Primary: deck.Ace, Secondary: deck.NoRank},
		},
		{
			name:     "straight",
			cards:    "9c8dTh6s7h2c2d",
			expected: HandStrength{Level: Straight, Primary: deck.Ten, Secondary: deck.NoRank},
		},
		{
			name:     "broadway straight",
			cards:    "AcKdQhJsTc",
			expected: HandStrength{Level: Straight, Primary: deck.Ace, Secondary: deck.NoRank},
		},
		{
			name:     "three of a kind",
			cards:    "8c8d8hKs2c",
			expected: HandStrength{Level: ThreeOfAKind, Primary: deck.Eight, Secondary: deck.NoRank},
		},
		{
			name:     "two pair takes the two highest pairs",
			cards:    "2c2dJhJs5c5d9h",
			expected: HandStrength{Level: TwoPair, Primary: deck.Jack, Secondary: deck.Five},
		},
		{
			name:     "one pair",
			cards:    "KcKd8h4s2c",
			expected: HandStrength{Level: OnePair, Primary: deck.King, Secondary: deck.NoRank},
		},
		{
			name:     "high card",
			cards:    "Ac9d7h4s2c",
			expected: HandStrength{Level: HighCard, Primary: deck.Ace, Secondary: deck.NoRank},
		},
		{
			name:     "two hole cards only",
			cards:    "AsAd",
			expected: HandStrength{Level: OnePair, Primary: deck.Ace, Secondary: deck.NoRank},
		},
		{
			name:  "straight flush reports plain flush",
			cards: "AsKsQsJsTs2h3d",
			// No straight-flush level on this scale.
			expected: HandStrength{Level: Flush, Primary: deck.Ace, Secondary: deck.NoRank},
		},
		{
			name:  "flush beats full house on this scale",
			cards: "5s6s9sKs2s2h2d",
			// Flush classification is final even with trips+pair present.
			expected: HandStrength{Level: Flush, Primary: deck.King, Secondary: deck.NoRank},
		},
		{
			name:     "no wheel straight",
			cards:    "Ac2d3h4s5c",
			expected: HandStrength{Level: HighCard, Primary: deck.Ace, Secondary: deck.NoRank},
		},
		{
			name:  "two trips counted as three of a kind",
			cards: "3c3d3h6s6d6hKs",
			// The reference never pairs two sets into a full house.
			expected: HandStrength{Level: ThreeOfAKind, Primary: deck.Six, Secondary: deck.NoRank},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(deck.MustParseCards(tt.cards))
			if got != tt.expected {
				t.Errorf("Evaluate() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

// Scenario from the simulator's contract: pocket sevens with two more on
// the board is four of a kind.
func TestEvaluateQuadsWithCommunity(t *testing.T) {
	hole := deck.MustParseCards("7c7d")
	community := deck.MustParseCards("7s7h2c")

	got := EvaluateHand(hole, community)
	if got.Level != FourOfAKind {
		t.Errorf("Level = %v, want FourOfAKind", got.Level)
	}
	if got.Primary != deck.Seven {
		t.Errorf("Primary = %v, want Seven", got.Primary)
	}
}

func TestEvaluateOrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 17))

	hands := []string{
		"7c7d7s7h2c",
		"QsQhQd5c5d9h2s",
		"2s5s7s9sJsAh",
		"9c8dTh6s7h",
		"KcKd8h4s2c",
		"Ac9d7h4s2c",
	}
	for _, hand := range hands {
		cards := deck.MustParseCards(hand)
		want := Evaluate(cards)

		for i := 0; i < 20; i++ {
			shuffled := make([]deck.Card, len(cards))
			copy(shuffled, cards)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			if got := Evaluate(shuffled); got != want {
				t.Errorf("hand %s: reordering changed result: %+v vs %+v", hand, got, want)
			}
		}
	}
}

func TestEvaluateMonotonicity(t *testing.T) {
	quads := Evaluate(deck.MustParseCards("2c2d2h2sAc"))

	lesser := []string{
		"AcKcQcJc9c",    // flush
		"AcAdAhKsKd",    // full house
		"AcKdQhJsTc",    // straight
		"AcAdAh7s2c",    // trips
		"AcAdKhKs2c",    // two pair
		"AcAd9h7s2c",    // pair
		"AcKdJh7s2c",    // high card
	}
	for _, hand := range lesser {
		hs := Evaluate(deck.MustParseCards(hand))
		if hs.Level >= quads.Level {
			t.Errorf("hand %s level %v should be below four of a kind", hand, hs.Level)
		}
	}
}

func TestValidateHand(t *testing.T) {
	tests := []struct {
		name    string
		cards   string
		wantErr bool
	}{
		{name: "two cards", cards: "AsKd"},
		{name: "seven cards", cards: "AsKdQh7c2s9d3h"},
		{name: "one card", cards: "As", wantErr: true},
		{name: "eight cards", cards: "AsKdQh7c2s9d3h4c", wantErr: true},
		{name: "duplicate", cards: "AsAs", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHand(deck.MustParseCards(tt.cards))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *InvalidHandError
				if !errors.As(err, &invalid) {
					t.Errorf("error should be *InvalidHandError, got %T", err)
				}
			}
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	cards := deck.MustParseCards("AsKd9h7c2sQdJh")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Evaluate(cards)
	}
}
