package carti

import (
	"carti-server/pkg/deck"
)

// VerifyBaseClaim audits a "Base" claim: the claimer asserts every card left
// in their hand is unbeatable. A card is beatable if an opponent holds a
// higher-power card of the same suit, or (under a concrete trump suit) any
// trump card while the claimer's card is not trump. The returned slice holds
// the claimer's beatable cards; an empty slice means the claim stands.
func VerifyBaseClaim(hand deck.Hand, otherHands []deck.Hand, trump Trump) []*deck.Card {
	remaining := make([]*deck.Card, 0)
	for _, h := range otherHands {
		remaining = append(remaining, h...)
	}

	beatable := make([]*deck.Card, 0)
	for _, card := range hand {
		for _, other := range remaining {
			if other.Suit == card.Suit {
				if CardPower(other, trump) > CardPower(card, trump) {
					beatable = append(beatable, card)
					break
				}

				continue
			}

			if trump.IsSuit() && Trump(card.Suit) != trump && Trump(other.Suit) == trump {
				beatable = append(beatable, card)
				break
			}
		}
	}

	return beatable
}
