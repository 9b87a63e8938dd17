package carti

import (
	"carti-server/pkg/deck"
)

// bid weights for hand evaluation
const (
	bidWeightTrumpJack = 40
	bidWeightTrumpNine = 25
	bidWeightTrumpAce  = 15
	bidWeightSideAce   = 20
	bidThreshold       = 70
)

// EvaluateBid scores the hand for each candidate trump suit and returns the
// best contract, or ok=false when no suit scores above the bidding threshold
// ("Pass"). The evaluation is deterministic.
func EvaluateBid(hand deck.Hand) (Contract, bool) {
	best := Contracts[0]
	maxScore := 0

	for _, contract := range Contracts {
		if !contract.Value.IsSuit() {
			continue
		}

		suit := deck.Suit(contract.Value)
		score := 0
		for _, c := range hand {
			if c.Suit == suit {
				switch c.Rank {
				case deck.Jack:
					score += bidWeightTrumpJack
				case deck.Nine:
					score += bidWeightTrumpNine
				case deck.Ace:
					score += bidWeightTrumpAce
				}
			} else if c.Rank == deck.Ace {
				score += bidWeightSideAce
			}
		}

		if score > maxScore {
			maxScore = score
			best = contract
		}
	}

	if maxScore > bidThreshold {
		return best, true
	}

	return Contract{}, false
}
