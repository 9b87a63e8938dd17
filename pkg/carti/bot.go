package carti

import (
	"carti-server/pkg/deck"
)

// BotMove picks the index of the card the bot should play.
//
// Leading: play the highest-power legal card to drain opponents. Following
// with the partner winning: load the trick with the highest point value.
// Following with a chance to win: play the cheapest card that still wins.
// Otherwise: trash the lowest point value.
func BotMove(hand deck.Hand, trick []PliEntry, trump Trump, seat int, slept []*deck.Card) int {
	legal := LegalMoves(hand, trick, trump, seat, slept)
	if len(legal) == 0 {
		return 0
	}

	if len(trick) == 0 {
		best := legal[0]
		for _, i := range legal[1:] {
			if CardPower(hand[i], trump) > CardPower(hand[best], trump) {
				best = i
			}
		}

		return best
	}

	highest := HighestEntry(trick, trump, slept)
	if highest.Player == PartnerOf(seat) {
		best := legal[0]
		for _, i := range legal[1:] {
			if CardPoints(hand[i], trump) > CardPoints(hand[best], trump) {
				best = i
			}
		}

		return best
	}

	tablePower := CardPower(highest.Card, trump)
	winning := make([]int, 0, len(legal))
	for _, i := range legal {
		if CardPower(hand[i], trump) > tablePower {
			winning = append(winning, i)
		}
	}

	if len(winning) > 0 {
		cheapest := winning[0]
		for _, i := range winning[1:] {
			if CardPower(hand[i], trump) < CardPower(hand[cheapest], trump) {
				cheapest = i
			}
		}

		return cheapest
	}

	trash := legal[0]
	for _, i := range legal[1:] {
		if CardPoints(hand[i], trump) < CardPoints(hand[trash], trump) {
			trash = i
		}
	}

	return trash
}
