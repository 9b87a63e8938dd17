package carti

import (
	"carti-server/pkg/deck"
)

// IsMoveIllegal reports whether playing cardPlayed violates the rules, given
// the hand as it stood at play time (with or without cardPlayed removed, as
// only the other cards matter), the lead card of the trick, the highest card
// on the table and whether the player's partner currently holds it.
//
// The function has no memory beyond its arguments, so it can be re-run
// against a recorded hand snapshot to audit a historical play.
func IsMoveIllegal(cardPlayed *deck.Card, hand deck.Hand, leadCard *deck.Card, trump Trump, highestCard *deck.Card, partnerWinning bool) bool {
	leadSuit := leadCard.Suit
	tablePower := CardPower(highestCard, trump)

	// follow suit
	if hand.HasSuit(leadSuit) {
		if cardPlayed.Suit != leadSuit {
			return true
		}

		// under AllTrump a player must over-play on the lead suit when able.
		// The partner-winning exemption does not apply here.
		if trump == AllTrump {
			canGoHigher := false
			for _, c := range hand {
				if c.Suit == leadSuit && CardPower(c, AllTrump) > tablePower {
					canGoHigher = true
					break
				}
			}

			if canGoHigher && CardPower(cardPlayed, AllTrump) <= tablePower {
				return true
			}
		}

		return false
	}

	// void in the lead suit. Under a concrete trump suit the player must cut,
	// unless their partner holds the best card on the table.
	if trump.IsSuit() {
		trumpSuit := deck.Suit(trump)
		if hand.HasSuit(trumpSuit) {
			if partnerWinning {
				return false
			}

			if cardPlayed.Suit != trumpSuit {
				return true
			}

			// the table is already cut: must over-trump when able
			if highestCard.Suit == trumpSuit {
				canGoHigher := false
				for _, c := range hand {
					if c.Suit == trumpSuit && CardPower(c, trump) > tablePower {
						canGoHigher = true
						break
					}
				}

				if canGoHigher && CardPower(cardPlayed, trump) <= tablePower {
					return true
				}
			}
		}
	}

	return false
}

// LegalMoves returns the indices of the cards in hand that may be played
// against the current trick. With an empty trick every card is legal.
func LegalMoves(hand deck.Hand, trick []PliEntry, trump Trump, seat int, slept []*deck.Card) []int {
	indices := make([]int, 0, len(hand))
	if len(trick) == 0 {
		for i := range hand {
			indices = append(indices, i)
		}

		return indices
	}

	leadCard := trick[0].Card
	highest := HighestEntry(trick, trump, slept)
	partnerWinning := highest.Player == PartnerOf(seat)

	for i, c := range hand {
		if !IsMoveIllegal(c, hand, leadCard, trump, highest.Card, partnerWinning) {
			indices = append(indices, i)
		}
	}

	return indices
}
