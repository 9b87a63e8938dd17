package deck

import (
	"sort"
)

// Hand represents a collection of cards
type Hand []*Card

// display ordering only. Legality and power computations never look at this.
var displaySuitOrder = map[Suit]int{
	Spades:   0,
	Hearts:   1,
	Diamonds: 2,
	Clubs:    3,
}

var displayRankOrder = map[int]int{
	Ace:   0,
	Ten:   1,
	King:  2,
	Queen: 3,
	Jack:  4,
	Nine:  5,
	Eight: 6,
	Seven: 7,
}

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if h[i].Suit != h[j].Suit {
		return displaySuitOrder[h[i].Suit] < displaySuitOrder[h[j].Suit]
	}

	return displayRankOrder[h[i].Rank] < displayRankOrder[h[j].Rank]
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Sort sorts the hand into the canonical display order (grouped by suit,
// then by the fixed display rank order)
func (h Hand) Sort() {
	sort.Sort(h)
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if the hand contains at least one card of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// Discard will remove the specified card from the hand and return true if it was found
func (h *Hand) Discard(card *Card) bool {
	newHand := make([]*Card, 0, len(*h))
	found := false
	for _, c := range *h {
		if !found && c.Equal(card) {
			found = true
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return found
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
