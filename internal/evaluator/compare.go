package evaluator

import (
	"sort"

	"github.com/lox/holdem-odds/internal/deck"
)

// Ordering is the result of comparing two hand strengths
type Ordering int

const (
	Less    Ordering = -1
	Tied    Ordering = 0
	Greater Ordering = 1
)

// String returns the string representation of an ordering
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Tied:
		return "tied"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Compare orders two hand strengths: level first, then primary rank, then
// secondary rank. An absent secondary (deck.NoRank) sorts below any present
// rank. Kickers beyond these three fields are not modelled; equal fields
// report Tied.
func Compare(a, b HandStrength) Ordering {
	if a.Level != b.Level {
		if a.Level > b.Level {
			return Greater
		}
		return Less
	}
	if a.Primary != b.Primary {
		if a.Primary > b.Primary {
			return Greater
		}
		return Less
	}
	if a.Secondary != b.Secondary {
		if a.Secondary > b.Secondary {
			return Greater
		}
		return Less
	}
	return Tied
}

// IsBetter reports whether hole1 strictly beats hole2 against the same
// community cards. When the three strength fields tie, it falls through to
// a descending rank-vector comparison over each player's full card set.
// The rank-vector fallback replaces the original positional hole-card
// comparison, which was ill-defined for unsorted multi-card hands.
func IsBetter(hole1, hole2, community []deck.Card) bool {
	switch Compare(EvaluateHand(hole1, community), EvaluateHand(hole2, community)) {
	case Greater:
		return true
	case Less:
		return false
	}
	return compareRankVectors(hole1, hole2, community) == Greater
}

// compareRankVectors compares two hands card-by-card after sorting all
// ranks (hole + community) in descending order.
func compareRankVectors(hole1, hole2, community []deck.Card) Ordering {
	ranks1 := sortedRanks(hole1, community)
	ranks2 := sortedRanks(hole2, community)
	for i := 0; i < len(ranks1) && i < len(ranks2); i++ {
		if ranks1[i] != ranks2[i] {
			if ranks1[i] > ranks2[i] {
				return Greater
			}
			return Less
		}
	}
	return Tied
}

func sortedRanks(hole, community []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, 0, len(hole)+len(community))
	for _, card := range hole {
		ranks = append(ranks, card.Rank)
	}
	for _, card := range community {
		ranks = append(ranks, card.Rank)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
	return ranks
}

// PlayerWins is the FindWinner result when no opponent beats the player.
const PlayerWins = -1

// FindWinner evaluates the player and every opponent against the same
// community cards and returns the index of the single best opponent that
// strictly beats the player, or PlayerWins if none does. When several
// opponents tie for best, only one index is reported; use FindBestOpponents
// for the full set.
func FindWinner(playerHole []deck.Card, opponentHoles [][]deck.Card, community []deck.Card) int {
	playerStrength := EvaluateHand(playerHole, community)

	winner := PlayerWins
	var best HandStrength
	for i, hole := range opponentHoles {
		strength := EvaluateHand(hole, community)
		if Compare(strength, playerStrength) != Greater {
			continue
		}
		if winner == PlayerWins || Compare(strength, best) == Greater {
			winner = i
			best = strength
		}
	}
	return winner
}

// FindBestOpponents returns the indexes of every opponent tied at the best
// strength that strictly beats the player. An empty result means the player
// wins.
func FindBestOpponents(playerHole []deck.Card, opponentHoles [][]deck.Card, community []deck.Card) []int {
	playerStrength := EvaluateHand(playerHole, community)

	var winners []int
	var best HandStrength
	for i, hole := range opponentHoles {
		strength := EvaluateHand(hole, community)
		if Compare(strength, playerStrength) != Greater {
			continue
		}
		switch {
		case len(winners) == 0 || Compare(strength, best) == Greater:
			winners = winners[:0]
			winners = append(winners, i)
			best = strength
		case Compare(strength, best) == Tied:
			winners = append(winners, i)
		}
	}
	return winners
}
