package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCard(t *testing.T) {
	a := assert.New(t)

	c := NewCard(Jack, Hearts)
	a.Equal(Jack, c.Rank)
	a.Equal(Hearts, c.Suit)
	a.Equal("JH", c.Code)

	a.Equal("0S", NewCard(Ten, Spades).Code)
	a.Equal("7C", NewCard(Seven, Clubs).Code)
	a.Equal("AD", NewCard(Ace, Diamonds).Code)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("J♡", NewCard(Jack, Hearts).String())
	a.Equal("10♠", NewCard(Ten, Spades).String())
	a.Equal("A♣", NewCard(Ace, Clubs).String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(NewCard(Nine, Diamonds).Equal(NewCard(Nine, Diamonds)))
	a.False(NewCard(Nine, Diamonds).Equal(NewCard(Nine, Hearts)))
	a.False(NewCard(Nine, Diamonds).Equal(NewCard(Ten, Diamonds)))
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	c, err := ParseCard("JH")
	a.NoError(err)
	a.Equal(Jack, c.Rank)
	a.Equal(Hearts, c.Suit)

	c, err = ParseCard("0s")
	a.NoError(err)
	a.Equal(Ten, c.Rank)
	a.Equal(Spades, c.Suit)

	_, err = ParseCard("")
	a.Error(err)

	_, err = ParseCard("XX")
	a.Error(err)

	_, err = ParseCard("10H")
	a.Error(err)
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Nil(CardFromString(""))
	a.Equal("QD", CardFromString("QD").Code)
	a.Panics(func() {
		CardFromString("5H")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("JH,9H,AS")
	a.Equal(3, len(cards))
	a.Equal("JH", cards[0].Code)
	a.Equal("9H", cards[1].Code)
	a.Equal("AS", cards[2].Code)

	a.Equal("JH,9H,AS", CardsToString(cards))
	a.Equal(0, len(CardsFromString("")))
}
