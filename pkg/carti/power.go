package carti

import (
	"fmt"

	"carti-server/pkg/deck"
)

// trumpPower ranks trump cards: J > 9 > A > 10 > K > Q > 8 > 7
var trumpPower = map[int]int{
	deck.Jack:  8,
	deck.Nine:  7,
	deck.Ace:   6,
	deck.Ten:   5,
	deck.King:  4,
	deck.Queen: 3,
	deck.Eight: 2,
	deck.Seven: 1,
}

// plainPower ranks non-trump cards: A > 10 > K > Q > J > 9 > 8 > 7
var plainPower = map[int]int{
	deck.Ace:   8,
	deck.Ten:   7,
	deck.King:  6,
	deck.Queen: 5,
	deck.Jack:  4,
	deck.Nine:  3,
	deck.Eight: 2,
	deck.Seven: 1,
}

var trumpPoints = map[int]int{
	deck.Jack:  20,
	deck.Nine:  14,
	deck.Ace:   11,
	deck.Ten:   10,
	deck.King:  4,
	deck.Queen: 3,
	deck.Eight: 0,
	deck.Seven: 0,
}

var plainPoints = map[int]int{
	deck.Ace:   11,
	deck.Ten:   10,
	deck.King:  4,
	deck.Queen: 3,
	deck.Jack:  2,
	deck.Nine:  0,
	deck.Eight: 0,
	deck.Seven: 0,
}

// isTrumpCard reports whether the card plays under the trump table. Under
// AllTrump every card is trump; under NoTrump none are.
func isTrumpCard(card *deck.Card, trump Trump) bool {
	if trump == AllTrump {
		return true
	}

	if trump == NoTrump {
		return false
	}

	return Trump(card.Suit) == trump
}

// CardPower returns the ranking strength of the card under the trump regime.
// Higher beats lower. Powers are only comparable within the rules of the
// trick resolver; a trump's power does not directly compare to a plain card's.
func CardPower(card *deck.Card, trump Trump) int {
	table := plainPower
	if isTrumpCard(card, trump) {
		table = trumpPower
	}

	power, ok := table[card.Rank]
	if !ok {
		panic(fmt.Sprintf("no power for rank %d", card.Rank))
	}

	return power
}

// CardPoints returns the scoring value of the card under the trump regime
func CardPoints(card *deck.Card, trump Trump) int {
	table := plainPoints
	if isTrumpCard(card, trump) {
		table = trumpPoints
	}

	points, ok := table[card.Rank]
	if !ok {
		panic(fmt.Sprintf("no points for rank %d", card.Rank))
	}

	return points
}
