package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits is the fixed suit order used when building a deck
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card in a 32-card piquet deck
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
	// Code is the short identifier ("JH", "0S"). It is derived from rank and
	// suit and kept on the struct so clients can match cards by code alone.
	Code string `json:"code"`
}

// ranks of a piquet deck. Seven is the lowest card.
const (
	Seven = 7
	Eight = 8
	Nine  = 9
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// NewCard returns a card with its code derived
func NewCard(rank int, suit Suit) *Card {
	return &Card{
		Rank: rank,
		Suit: suit,
		Code: cardCode(rank, suit),
	}
}

func rankLabel(rank int) string {
	switch rank {
	case Seven, Eight, Nine:
		return fmt.Sprintf("%d", rank)
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	panic(fmt.Sprintf("unknown rank: %d", rank))
}

// cardCode builds the short identifier. Ten is abbreviated to "0" so every
// code is exactly two characters.
func cardCode(rank int, suit Suit) string {
	label := rankLabel(rank)
	if rank == Ten {
		label = "0"
	}

	return label + strings.ToUpper(string(suit[0]))
}

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rankLabel(c.Rank), suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// ParseCard returns a Card from its code.
// The code must be in the format of <rank><suit initial>, i.e. "JH" or "0S"
func ParseCard(s string) (*Card, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	var rank int
	switch strings.ToUpper(s[0:1]) {
	case "7", "8", "9":
		rank = int(s[0] - '0')
	case "0":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	var suit Suit
	switch strings.ToUpper(s[1:2]) {
	case "C":
		suit = Clubs
	case "D":
		suit = Diamonds
	case "H":
		suit = Hearts
	case "S":
		suit = Spades
	default:
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	return NewCard(rank, suit), nil
}

// CardFromString returns a Card from its code, panicking on a bad code.
// Meant for tests and fixtures; use ParseCard for untrusted input.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// CardsFromString will returns a slice of cards from a comma-separated code list
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of JH,0S,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.Code
	}

	return strings.Join(c, ",")
}
