package carti

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carti-server/pkg/deck"
)

func trickFromString(s string) []PliEntry {
	cards := deck.CardsFromString(s)
	trick := make([]PliEntry, len(cards))
	for i, c := range cards {
		trick[i] = PliEntry{Card: c, Player: i}
	}

	return trick
}

func TestWinnerOfTrick_suitRegime(t *testing.T) {
	a := assert.New(t)

	// a lone trump beats every plain card
	a.Equal(1, WinnerOfTrick(trickFromString("AH,7S,0H,KH"), TrumpSpades, nil))

	// trump against trump goes to the trump hierarchy
	a.Equal(1, WinnerOfTrick(trickFromString("9S,JS,AS,7S"), TrumpSpades, nil))

	// no trump played: highest of the lead suit
	a.Equal(0, WinnerOfTrick(trickFromString("AH,0H,KH,AD"), TrumpSpades, nil))
}

func TestWinnerOfTrick_allTrump(t *testing.T) {
	a := assert.New(t)

	// only lead-suit cards can win, ranked on the trump hierarchy
	a.Equal(2, WinnerOfTrick(trickFromString("7H,AH,JH,JS"), AllTrump, nil))
	a.Equal(1, WinnerOfTrick(trickFromString("0H,9H,AS,AD"), AllTrump, nil))
}

func TestWinnerOfTrick_noTrump(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, WinnerOfTrick(trickFromString("9H,JH,7H,AS"), NoTrump, nil))
	a.Equal(3, WinnerOfTrick(trickFromString("9H,JH,7H,AH"), NoTrump, nil))
}

func TestWinnerOfTrick_sleptCards(t *testing.T) {
	a := assert.New(t)

	trick := trickFromString("7H,AH,0H,8H")

	a.Equal(1, WinnerOfTrick(trick, TrumpHearts, nil))

	// the ace is neutralized: the ten takes it
	a.Equal(2, WinnerOfTrick(trick, TrumpHearts, deck.CardsFromString("AH")))

	a.Equal(0, WinnerOfTrick(nil, TrumpHearts, nil))
}

func TestHighestEntry(t *testing.T) {
	a := assert.New(t)

	a.Nil(HighestEntry(nil, TrumpHearts, nil))

	trick := trickFromString("9H,7S,AH")
	best := HighestEntry(trick, TrumpSpades, nil)
	a.Equal(1, best.Player)

	best = HighestEntry(trick, TrumpSpades, deck.CardsFromString("7S"))
	a.Equal(2, best.Player)

	// everything slept: the lead is the provisional best
	best = HighestEntry(trick, TrumpSpades, deck.CardsFromString("9H,7S,AH"))
	a.Equal(0, best.Player)
}

func TestTrickPoints(t *testing.T) {
	a := assert.New(t)

	// J+9 of trump with two plain tens
	a.Equal(20+14+10+10, TrickPoints(trickFromString("JH,9H,0S,0D"), TrumpHearts))
	a.Equal(2+0+10+10, TrickPoints(trickFromString("JH,9H,0S,0D"), TrumpClubs))
}
