package deck

import (
	"testing"

	"github.com/lox/holdem-odds/internal/randutil"
)

func TestDeckDealsFullDomain(t *testing.T) {
	for _, seed := range []int64{1, 42, 12345} {
		d := NewShuffledDeck(randutil.New(seed))

		seen := make(map[Card]int)
		dealt := d.DealN(52)
		if len(dealt) != 52 {
			t.Fatalf("DealN(52) returned %d cards", len(dealt))
		}
		for _, card := range dealt {
			seen[card]++
		}

		for _, card := range AllCards() {
			if seen[card] != 1 {
				t.Errorf("seed %d: card %v dealt %d times, want exactly once", seed, card, seen[card])
			}
		}

		if !d.IsEmpty() {
			t.Error("deck should be empty after dealing all cards")
		}
		if _, ok := d.Deal(); ok {
			t.Error("Deal() on empty deck should report no card")
		}
	}
}

func TestDeckDealtPlusRemaining(t *testing.T) {
	d := NewShuffledDeck(randutil.New(7))

	d.DealN(17)
	if got := len(d.Dealt()) + d.Remaining(); got != 52 {
		t.Errorf("dealt + remaining = %d, want 52", got)
	}
}

func TestDeckShuffleDeterministic(t *testing.T) {
	d1 := NewShuffledDeck(randutil.New(99))
	d2 := NewShuffledDeck(randutil.New(99))

	cards1 := d1.DealN(52)
	cards2 := d2.DealN(52)
	for i := range cards1 {
		if cards1[i] != cards2[i] {
			t.Fatalf("same seed produced different orders at %d: %v vs %v", i, cards1[i], cards2[i])
		}
	}
}

func TestDeckReset(t *testing.T) {
	d := NewShuffledDeck(randutil.New(3))
	d.DealN(30)

	d.Reset()
	if d.Remaining() != 52 {
		t.Errorf("Remaining() after Reset = %d, want 52", d.Remaining())
	}

	seen := make(map[Card]bool)
	for _, card := range d.DealN(52) {
		if seen[card] {
			t.Errorf("duplicate card after Reset: %v", card)
		}
		seen[card] = true
	}
}

func TestDealNClampsToRemaining(t *testing.T) {
	d := NewShuffledDeck(randutil.New(5))
	d.DealN(50)
	if got := d.DealN(5); len(got) != 2 {
		t.Errorf("DealN(5) with 2 remaining returned %d cards", len(got))
	}
}
