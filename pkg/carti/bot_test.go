package carti

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carti-server/pkg/deck"
)

func TestBotMove_leadsWithPower(t *testing.T) {
	hand := deck.Hand(deck.CardsFromString("7H,JH,AH"))

	// leading under hearts trump: the jack is the master
	index := BotMove(hand, nil, TrumpHearts, 0, nil)
	assert.Equal(t, 1, index)

	// under NoTrump the ace outranks the jack
	index = BotMove(hand, nil, NoTrump, 0, nil)
	assert.Equal(t, 2, index)
}

func TestBotMove_loadsForWinningPartner(t *testing.T) {
	trick := []PliEntry{
		{Card: deck.CardFromString("AH"), Player: 0},
		{Card: deck.CardFromString("7H"), Player: 1},
	}

	// partner's ace holds the trick: throw it the ten, not the king
	hand := deck.Hand(deck.CardsFromString("0H,KH"))
	index := BotMove(hand, trick, NoTrump, 2, nil)
	assert.Equal(t, 0, index)
}

func TestBotMove_cheapestWinner(t *testing.T) {
	trick := []PliEntry{
		{Card: deck.CardFromString("9H"), Player: 0},
	}

	// the ten already beats the nine: keep the ace
	hand := deck.Hand(deck.CardsFromString("7H,0H,AH"))
	index := BotMove(hand, trick, NoTrump, 1, nil)
	assert.Equal(t, 1, index)
}

func TestBotMove_trashesWhenBeaten(t *testing.T) {
	trick := []PliEntry{
		{Card: deck.CardFromString("AH"), Player: 0},
	}

	// nothing beats the ace: dump the lowest point value
	hand := deck.Hand(deck.CardsFromString("0H,7H,KH"))
	index := BotMove(hand, trick, NoTrump, 1, nil)
	assert.Equal(t, 1, index)
}
