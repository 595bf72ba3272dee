package deck

// CardSet is a 52-bit set over the card domain, used to track which
// cards are already committed to a hand or the board.
type CardSet uint64

// NewCardSet creates a CardSet from groups of cards
func NewCardSet(cards ...[]Card) CardSet {
	var cs CardSet
	for _, group := range cards {
		for _, card := range group {
			cs.Add(card)
		}
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.Index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.Index()) != 0
}

// Count returns the number of cards in the set
func (cs CardSet) Count() int {
	count := 0
	for v := uint64(cs); v != 0; v &= v - 1 {
		count++
	}
	return count
}

// Available returns every card in the 52-card domain that is not in the set.
func (cs CardSet) Available() []Card {
	available := make([]Card, 0, 52-cs.Count())
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Suit: suit, Rank: rank}
			if !cs.Contains(card) {
				available = append(available, card)
			}
		}
	}
	return available
}
