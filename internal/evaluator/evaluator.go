// Package evaluator ranks 2-7 card Texas Hold'em hands on the simplified
// 8-level scale used by the simulator. The scale has no straight-flush or
// royal-flush levels (level 5 is unused, all flushes share level 6) and no
// ace-low wheel straight. Flushes are classified before multiples of a kind,
// so a hand that is both a flush and a full house reports a flush.
package evaluator

import (
	"fmt"

	"github.com/lox/holdem-odds/internal/deck"
)

// Level is the poker hand category, the primary sort key for hand strength.
// Higher is stronger.
type Level int

const (
	HighCard     Level = 0
	OnePair      Level = 1
	TwoPair      Level = 2
	ThreeOfAKind Level = 3
	Straight     Level = 4
	Flush        Level = 6
	FullHouse    Level = 7
	FourOfAKind  Level = 8
)

// String returns the readable name of the level
func (l Level) String() string {
	switch l {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	default:
		return "Unknown"
	}
}

// HandStrength is a totally ordered descriptor of a hand's strength.
// Secondary is deck.NoRank except for two-pair and full-house hands,
// where it carries the second pair's rank.
type HandStrength struct {
	Level     Level
	Primary   deck.Rank
	Secondary deck.Rank
}

// String returns a readable description, e.g. "Two Pair (K, 9)"
func (hs HandStrength) String() string {
	if hs.Secondary != deck.NoRank {
		return fmt.Sprintf("%s (%s, %s)", hs.Level, hs.Primary, hs.Secondary)
	}
	return fmt.Sprintf("%s (%s)", hs.Level, hs.Primary)
}

// InvalidHandError reports evaluator input that violates the 2-7
// unique-card contract.
type InvalidHandError struct {
	Count     int
	Duplicate *deck.Card
}

func (e *InvalidHandError) Error() string {
	if e.Duplicate != nil {
		return fmt.Sprintf("invalid hand: duplicate card %s", e.Duplicate)
	}
	return fmt.Sprintf("invalid hand: %d cards (must be 2-7)", e.Count)
}

// ValidateHand checks the evaluator's input contract: 2 to 7 cards with no
// duplicate (rank, suit) pair. Evaluate itself does not validate; callers
// passing untrusted cards should validate once up front.
func ValidateHand(cards []deck.Card) error {
	if len(cards) < 2 || len(cards) > 7 {
		return &InvalidHandError{Count: len(cards)}
	}
	var seen deck.CardSet
	for _, card := range cards {
		if seen.Contains(card) {
			c := card
			return &InvalidHandError{Count: len(cards), Duplicate: &c}
		}
		seen.Add(card)
	}
	return nil
}

// Evaluate computes the strength of a 2-7 card hand. The input must satisfy
// ValidateHand; malformed input is a caller contract violation.
//
// Classification cascades in reference order, each match final: flush, four
// of a kind, full house, three of a kind, straight, pairs, high card.
func Evaluate(cards []deck.Card) HandStrength {
	var rankCount [int(deck.Ace) + 1]int
	var suitCount [4]int
	highest := deck.NoRank

	for _, card := range cards {
		rankCount[card.Rank]++
		suitCount[card.Suit]++
		if card.Rank > highest {
			highest = card.Rank
		}
	}

	// Flush. Primary is the highest rank overall, not the highest card of
	// the flush suit, matching the reference simplification.
	for _, count := range suitCount {
		if count >= 5 {
			return HandStrength{Level: Flush, Primary: highest, Secondary: deck.NoRank}
		}
	}

	tripRank := deck.NoRank
	pairRank := deck.NoRank
	for r := deck.Two; r <= deck.Ace; r++ {
		switch rankCount[r] {
		case 4:
			return HandStrength{Level: FourOfAKind, Primary: r, Secondary: deck.NoRank}
		case 3:
			if r > tripRank {
				tripRank = r
			}
		case 2:
			if r > pairRank {
				pairRank = r
			}
		}
	}

	if tripRank != deck.NoRank && pairRank != deck.NoRank {
		return HandStrength{Level: FullHouse, Primary: tripRank, Secondary: pairRank}
	}
	if tripRank != deck.NoRank {
		return HandStrength{Level: ThreeOfAKind, Primary: tripRank, Secondary: deck.NoRank}
	}

	// Straight: five consecutive ranks, scanned high to low. No wheel.
	consecutive := 0
	for r := deck.Ace; r >= deck.Two; r-- {
		if rankCount[r] == 0 {
			consecutive = 0
			continue
		}
		consecutive++
		if consecutive >= 5 {
			return HandStrength{Level: Straight, Primary: r + 4, Secondary: deck.NoRank}
		}
	}

	highPair := deck.NoRank
	lowPair := deck.NoRank
	pairs := 0
	for r := deck.Two; r <= deck.Ace; r++ {
		if rankCount[r] != 2 {
			continue
		}
		pairs++
		if r > highPair {
			lowPair = highPair
			highPair = r
		} else if r > lowPair {
			lowPair = r
		}
	}
	if pairs >= 2 {
		return HandStrength{Level: TwoPair, Primary: highPair, Secondary: lowPair}
	}
	if pairs == 1 {
		return HandStrength{Level: OnePair, Primary: highPair, Secondary: deck.NoRank}
	}

	return HandStrength{Level: HighCard, Primary: highest, Secondary: deck.NoRank}
}

// EvaluateHand evaluates hole cards against community cards.
func EvaluateHand(hole, community []deck.Card) HandStrength {
	cards := make([]deck.Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)
	return Evaluate(cards)
}
