package carti

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carti-server/pkg/deck"
)

func TestVerifyBaseClaim(t *testing.T) {
	a := assert.New(t)

	// no trump left in opposing hands: the trump jack and the bare ace
	// are untouchable
	others := []deck.Hand{
		deck.CardsFromString("7D,QS"),
		deck.CardsFromString("8C"),
	}
	beatable := VerifyBaseClaim(deck.CardsFromString("JH,AD"), others, TrumpHearts)
	a.Equal(0, len(beatable))

	// the king of hearts still out there beats the queen, and as a trump
	// it beats the plain ace too
	others[0] = deck.CardsFromString("KH,7D")
	beatable = VerifyBaseClaim(deck.CardsFromString("QH,AD"), others, TrumpHearts)
	a.Equal(2, len(beatable))
	a.Equal("QH", beatable[0].Code)
	a.Equal("AD", beatable[1].Code)
}

func TestVerifyBaseClaim_trumpDominance(t *testing.T) {
	a := assert.New(t)

	// a plain ace is beatable while any trump remains in opposing hands
	others := []deck.Hand{deck.CardsFromString("7S")}
	beatable := VerifyBaseClaim(deck.CardsFromString("AD"), others, TrumpSpades)
	a.Equal(1, len(beatable))

	// but not under NoTrump, where no suit dominates
	beatable = VerifyBaseClaim(deck.CardsFromString("AD"), others, NoTrump)
	a.Equal(0, len(beatable))

	// a trump card only loses to a higher trump
	beatable = VerifyBaseClaim(deck.CardsFromString("9S"), others, TrumpSpades)
	a.Equal(0, len(beatable))

	beatable = VerifyBaseClaim(deck.CardsFromString("8S"), []deck.Hand{deck.CardsFromString("9S")}, TrumpSpades)
	a.Equal(1, len(beatable))
}

func TestSeatHelpers(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, NextSeat(0))
	a.Equal(0, NextSeat(3))
	a.Equal(2, PartnerOf(0))
	a.Equal(1, PartnerOf(3))
	a.True(IsTeam1(0))
	a.True(IsTeam1(2))
	a.False(IsTeam1(1))

	a.Equal(TeamPoints{Team1: 3, Team2: 7}, TeamPoints{Team1: 1, Team2: 2}.Add(TeamPoints{Team1: 2, Team2: 5}))

	a.True(TrumpHearts.IsSuit())
	a.False(AllTrump.IsSuit())
	a.False(NoTrump.IsSuit())
}
