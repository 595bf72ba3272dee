package deck

import rand "math/rand/v2"

// Deck represents an ordered 52-card deck with a dealing cursor.
// At any point the dealt and remaining cards together cover the
// full domain exactly once.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a full 52-card deck using the provided generator
// for shuffling. The deck starts unshuffled.
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{cards: AllCards(), rng: rng}
}

// NewShuffledDeck creates a full deck and shuffles it.
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := NewDeck(rng)
	d.Shuffle()
	return d
}

// Shuffle applies a Fisher-Yates permutation to the undealt cards.
func (d *Deck) Shuffle() {
	undealt := d.cards[d.next:]
	for i := len(undealt) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		undealt[i], undealt[j] = undealt[j], undealt[i]
	}
}

// Deal removes and returns the next card from the deck
func (d *Deck) Deal() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// DealN deals n cards from the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards)-d.next {
		n = len(d.cards) - d.next
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		if card, ok := d.Deal(); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// Dealt returns the cards dealt so far, in deal order.
func (d *Deck) Dealt() []Card {
	return d.cards[:d.next]
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return d.Remaining() == 0
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.cards = AllCards()
	d.next = 0
	d.Shuffle()
}
