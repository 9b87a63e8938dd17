package carti

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPoints_lastTrickBonus(t *testing.T) {
	a := assert.New(t)

	got := FinalPoints(TeamPoints{Team1: 90, Team2: 62}, false, 0, TrumpHearts, 0)
	a.Equal(TeamPoints{Team1: 100, Team2: 62}, got)

	got = FinalPoints(TeamPoints{Team1: 90, Team2: 62}, false, 0, TrumpHearts, 1)
	a.Equal(TeamPoints{Team1: 90, Team2: 72}, got)
}

func TestFinalPoints_noTrumpDoubles(t *testing.T) {
	a := assert.New(t)

	// doubling happens before the half comparison: 2x(80+10)=180 vs 2x72=144,
	// bidder team1 has 180 >= 162 so the result stands doubled
	got := FinalPoints(TeamPoints{Team1: 80, Team2: 72}, false, 0, NoTrump, 0)
	a.Equal(TeamPoints{Team1: 180, Team2: 144}, got)

	// bidder short of half after doubling goes dedans on the doubled total
	got = FinalPoints(TeamPoints{Team1: 30, Team2: 122}, false, 0, NoTrump, 1)
	a.Equal(TeamPoints{Team1: 0, Team2: 324}, got)
}

func TestFinalPoints_coinche(t *testing.T) {
	a := assert.New(t)

	// below half forfeits double the total
	got := FinalPoints(TeamPoints{Team1: 50, Team2: 102}, true, 0, TrumpHearts, 1)
	a.Equal(TeamPoints{Team1: 0, Team2: 324}, got)

	got = FinalPoints(TeamPoints{Team1: 102, Team2: 50}, true, 0, TrumpHearts, 0)
	a.Equal(TeamPoints{Team1: 324, Team2: 0}, got)

	// a coinched tie at exactly half is litige: raw values unchanged
	got = FinalPoints(TeamPoints{Team1: 81, Team2: 71}, true, 0, TrumpHearts, 1)
	a.Equal(TeamPoints{Team1: 81, Team2: 81}, got)
}

func TestFinalPoints_capot(t *testing.T) {
	a := assert.New(t)

	got := FinalPoints(TeamPoints{Team1: 152, Team2: 0}, false, 0, TrumpHearts, 0)
	a.Equal(TeamPoints{Team1: 250, Team2: 0}, got)

	got = FinalPoints(TeamPoints{Team1: 0, Team2: 248}, false, 0, AllTrump, 1)
	a.Equal(TeamPoints{Team1: 0, Team2: 350}, got)
}

func TestFinalPoints_litigeAndDedans(t *testing.T) {
	a := assert.New(t)

	// uncoinched tie: litige, raw values stand
	got := FinalPoints(TeamPoints{Team1: 81, Team2: 71}, false, 0, TrumpHearts, 1)
	a.Equal(TeamPoints{Team1: 81, Team2: 81}, got)

	// bidding team short of half: defenders take everything
	got = FinalPoints(TeamPoints{Team1: 60, Team2: 92}, false, 0, TrumpHearts, 1)
	a.Equal(TeamPoints{Team1: 0, Team2: 162}, got)

	got = FinalPoints(TeamPoints{Team1: 92, Team2: 60}, false, 1, TrumpHearts, 0)
	a.Equal(TeamPoints{Team1: 162, Team2: 0}, got)
}

func TestBeloteRound_conservation(t *testing.T) {
	a := assert.New(t)

	// both nonzero and the naive rounding overshoots: the pair must sum to
	// the total, with the higher raw score keeping its rounded value
	for raw1 := 1; raw1 < 162; raw1++ {
		raw2 := 162 - raw1
		t1, t2 := BeloteRound(raw1, raw2, false)

		if r1, r2 := roundToTens(raw1), roundToTens(raw2); r1+r2 > totalAvailableSuit {
			a.Equal(totalAvailableSuit, t1+t2, "raw1=%d", raw1)
		}

		if raw1 >= raw2 {
			a.Equal(roundToTens(raw1), t1, "raw1=%d", raw1)
		} else {
			a.Equal(roundToTens(raw2), t2, "raw1=%d", raw1)
		}
	}
}

func TestBeloteRound_capotProtection(t *testing.T) {
	a := assert.New(t)

	// scenario: a shut-out team stays at zero and the opponent is forced
	// up to the full total, whatever the raw score was
	for _, raw := range []int{1, 100, 152, 250} {
		t1, t2 := BeloteRound(0, raw, false)
		a.Equal(0, t1)
		a.GreaterOrEqual(t2, totalAvailableSuit)

		t1, t2 = BeloteRound(raw, 0, true)
		a.Equal(0, t2)
		a.GreaterOrEqual(t1, totalAvailableBigGame)
	}

	t1, t2 := BeloteRound(0, 42, false)
	a.Equal(0, t1)
	a.Equal(16, t2)
}

func TestBeloteRound_rounding(t *testing.T) {
	a := assert.New(t)

	// ones digit of 6 rounds up, 5 rounds down
	t1, t2 := BeloteRound(96, 66, false)
	a.Equal(10, t1)
	a.Equal(6, t2)

	t1, t2 = BeloteRound(95, 67, false)
	a.Equal(9, t1)
	a.Equal(7, t2)
}

func TestTotalAvailable(t *testing.T) {
	a := assert.New(t)
	a.Equal(16, TotalAvailable(TrumpHearts))
	a.Equal(26, TotalAvailable(AllTrump))
	a.Equal(26, TotalAvailable(NoTrump))
	a.True(BigGame(NoTrump))
	a.False(BigGame(TrumpClubs))
}
