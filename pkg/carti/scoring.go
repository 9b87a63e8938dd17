package carti

// scoring constants
const (
	lastTrickBonus    = 10
	capotBonusSuit    = 250
	capotBonusBigGame = 350

	// rounded point totals available per round. The "big game" regimes
	// (AllTrump and NoTrump) play for 26, a suit contract for 16.
	totalAvailableSuit    = 16
	totalAvailableBigGame = 26
)

// BigGame reports whether the trump regime plays on the 26-point scale
func BigGame(trump Trump) bool {
	return trump == AllTrump || trump == NoTrump
}

// TotalAvailable returns the rounded point total a round is worth
func TotalAvailable(trump Trump) int {
	if BigGame(trump) {
		return totalAvailableBigGame
	}

	return totalAvailableSuit
}

// FinalPoints converts the raw card points of a finished round into final
// raw team totals: the last-trick bonus, NoTrump doubling, then in order the
// coinche settlement, capot bonus, and dedans check. A literal tie ("litige")
// returns the totals unchanged in both the coinche and normal branches.
func FinalPoints(raw TeamPoints, coinched bool, bidder int, trump Trump, lastTrickWinner int) TeamPoints {
	t1, t2 := raw.Team1, raw.Team2

	if IsTeam1(lastTrickWinner) {
		t1 += lastTrickBonus
	} else {
		t2 += lastTrickBonus
	}

	if trump == NoTrump {
		t1 *= 2
		t2 *= 2
	}

	total := t1 + t2
	half := total / 2

	if coinched {
		switch {
		case t1 == t2:
			return TeamPoints{Team1: t1, Team2: t2} // litige
		case t1 < half:
			return TeamPoints{Team1: 0, Team2: total * 2}
		case t2 < half:
			return TeamPoints{Team1: total * 2, Team2: 0}
		}

		return TeamPoints{Team1: t1, Team2: t2}
	}

	if t2 == 0 || t1 == 0 {
		bonus := capotBonusSuit
		if BigGame(trump) {
			bonus = capotBonusBigGame
		}

		if t2 == 0 {
			return TeamPoints{Team1: bonus, Team2: 0}
		}

		return TeamPoints{Team1: 0, Team2: bonus}
	}

	if t1 == t2 {
		return TeamPoints{Team1: t1, Team2: t2} // litige
	}

	if IsTeam1(bidder) {
		if t1 < half {
			return TeamPoints{Team1: 0, Team2: total} // dedans
		}
	} else if t2 < half {
		return TeamPoints{Team1: total, Team2: 0} // dedans
	}

	return TeamPoints{Team1: t1, Team2: t2}
}

// roundToTens rounds a raw score to the nearest ten on the small scale:
// a ones digit of 6 or more rounds up.
func roundToTens(score int) int {
	rounded := score / 10
	if score%10 >= 6 {
		rounded++
	}

	return rounded
}

// BeloteRound converts raw round scores onto the conserved 16- or 26-point
// scale. A team with zero raw points stays at zero and the opponent is forced
// up to the full total (capot protection). Otherwise, when the naively
// rounded values overshoot the total, the team with the lower raw score is
// clamped so the pair sums to exactly the total available.
func BeloteRound(score1, score2 int, bigGame bool) (int, int) {
	totalAvailable := totalAvailableSuit
	if bigGame {
		totalAvailable = totalAvailableBigGame
	}

	t1 := roundToTens(score1)
	t2 := roundToTens(score2)

	if score1 == 0 {
		if t2 < totalAvailable {
			t2 = totalAvailable
		}

		return 0, t2
	}

	if score2 == 0 {
		if t1 < totalAvailable {
			t1 = totalAvailable
		}

		return t1, 0
	}

	if t1+t2 > totalAvailable {
		if score1 >= score2 {
			t2 = totalAvailable - t1
			if t2 < 0 {
				t2 = 0
			}
		} else {
			t1 = totalAvailable - t2
			if t1 < 0 {
				t1 = 0
			}
		}
	}

	return t1, t2
}
