package carti

import (
	"carti-server/pkg/deck"
)

func isSlept(card *deck.Card, slept []*deck.Card) bool {
	for _, s := range slept {
		if s.Code == card.Code {
			return true
		}
	}

	return false
}

// HighestEntry returns the entry currently winning the (possibly partial)
// trick. Slept cards are powerless and cannot be the highest, but the lead
// card still defines the lead suit. If every entry has been slept the first
// entry is returned as a provisional best.
//
// Returns nil for an empty trick.
func HighestEntry(trick []PliEntry, trump Trump, slept []*deck.Card) *PliEntry {
	if len(trick) == 0 {
		return nil
	}

	valid := make([]PliEntry, 0, len(trick))
	for _, entry := range trick {
		if !isSlept(entry.Card, slept) {
			valid = append(valid, entry)
		}
	}

	if len(valid) == 0 {
		entry := trick[0]
		return &entry
	}

	best := valid[0]
	leadSuit := trick[0].Card.Suit

	for _, current := range valid[1:] {
		bestIsTrump := isTrumpCard(best.Card, trump)
		currIsTrump := isTrumpCard(current.Card, trump)

		switch {
		case currIsTrump && !bestIsTrump:
			best = current
		case currIsTrump == bestIsTrump:
			if current.Card.Suit == best.Card.Suit {
				if CardPower(current.Card, trump) > CardPower(best.Card, trump) {
					best = current
				}
			} else if !currIsTrump && current.Card.Suit == leadSuit {
				if CardPower(current.Card, trump) > CardPower(best.Card, trump) {
					best = current
				}
			}
		}
	}

	return &best
}

// WinnerOfTrick returns the seat that won the trick under the trump regime.
// Cards listed in slept are excluded from the comparison entirely; the lead
// entry still defines the lead suit. A trick with fewer than four entries is
// resolved the same way, and an empty trick defensively returns seat 0.
func WinnerOfTrick(trick []PliEntry, trump Trump, slept []*deck.Card) int {
	if len(trick) == 0 {
		return 0
	}

	leadSuit := trick[0].Card.Suit
	best := trick[0]

	for _, current := range trick[1:] {
		if isSlept(current.Card, slept) {
			continue
		}

		switch {
		case trump == AllTrump:
			// every card ranks on the trump hierarchy, and only cards of the
			// lead suit can win
			if current.Card.Suit == leadSuit &&
				trumpPower[current.Card.Rank] > trumpPower[best.Card.Rank] {
				best = current
			}
		case trump == NoTrump:
			if current.Card.Suit == leadSuit &&
				plainPower[current.Card.Rank] > plainPower[best.Card.Rank] {
				best = current
			}
		default:
			trumpSuit := deck.Suit(trump)
			currIsTrump := current.Card.Suit == trumpSuit
			bestIsTrump := best.Card.Suit == trumpSuit

			if currIsTrump && !bestIsTrump {
				best = current
			} else if currIsTrump && bestIsTrump {
				if trumpPower[current.Card.Rank] > trumpPower[best.Card.Rank] {
					best = current
				}
			} else if !currIsTrump && !bestIsTrump && current.Card.Suit == leadSuit {
				if plainPower[current.Card.Rank] > plainPower[best.Card.Rank] {
					best = current
				}
			}
		}
	}

	return best.Player
}

// TrickPoints returns the total point value of the cards in the trick
func TrickPoints(trick []PliEntry, trump Trump) int {
	sum := 0
	for _, entry := range trick {
		sum += CardPoints(entry.Card, trump)
	}

	return sum
}
