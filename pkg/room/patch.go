package room

import (
	"time"

	"carti-server/pkg/carti"
	"carti-server/pkg/deck"
)

// GamePatch is a sparse merge-patch over GameData. Nil fields are left
// untouched; set fields are applied one at a time with no atomicity across
// fields, mirroring the path-per-field writes of the sync layer. Orchestrator
// transitions construct exactly one patch per logical transition.
type GamePatch struct {
	Phase           *Phase
	Dealer          *int
	Starter         *int
	Bidder          *int
	CurrentPlayer   *int
	Contract        *carti.Contract
	ClearContract   bool
	Hands           *[4]deck.Hand
	Deck            *[]*deck.Card
	CurrentPli      *[]carti.PliEntry
	PlayedCards     *[]*deck.Card
	SleptCards      *[]*deck.Card
	Scores          *carti.TeamPoints
	RoundPoints     *carti.TeamPoints
	ContestScore    *carti.TeamPoints
	IsCoinched      *bool
	BaseStatus      *BaseStatus
	BaseClaimer     *int
	ExposedHands    *[4]deck.Hand
	ClearExposed    bool
	LastTrickWinner *int

	// per-seat merges: each present key replaces that seat's value only
	IllegalMoves map[int][]Evidence
	PlayerBids   map[int]string
	ReadyPlayers map[int]bool

	ClearPlayerBids   bool
	ClearReadyPlayers bool
}

// helpers for building patches without address-of gymnastics at call sites

// Int returns a pointer to v
func Int(v int) *int { return &v }

// Bool returns a pointer to v
func Bool(v bool) *bool { return &v }

// PhaseOf returns a pointer to v
func PhaseOf(v Phase) *Phase { return &v }

// StatusOf returns a pointer to v
func StatusOf(v BaseStatus) *BaseStatus { return &v }

// Points returns a pointer to v
func Points(v carti.TeamPoints) *carti.TeamPoints { return &v }

// Cards returns a pointer to the slice
func Cards(v []*deck.Card) *[]*deck.Card { return &v }

// Pli returns a pointer to the slice
func Pli(v []carti.PliEntry) *[]carti.PliEntry { return &v }

// apply merges the patch into the game document, field by field
func (g *GameData) apply(p GamePatch, now time.Time) {
	if p.Phase != nil {
		g.Phase = *p.Phase
	}

	if p.Dealer != nil {
		g.Dealer = *p.Dealer
	}

	if p.Starter != nil {
		g.Starter = *p.Starter
	}

	if p.Bidder != nil {
		g.Bidder = *p.Bidder
	}

	if p.CurrentPlayer != nil {
		g.CurrentPlayer = *p.CurrentPlayer
	}

	if p.ClearContract {
		g.Contract = nil
	} else if p.Contract != nil {
		g.Contract = p.Contract
	}

	if p.Hands != nil {
		g.Hands = *p.Hands
	}

	if p.Deck != nil {
		g.Deck = *p.Deck
	}

	if p.CurrentPli != nil {
		g.CurrentPli = *p.CurrentPli
	}

	if p.PlayedCards != nil {
		g.PlayedCards = *p.PlayedCards
	}

	if p.SleptCards != nil {
		g.SleptCards = *p.SleptCards
	}

	if p.Scores != nil {
		g.Scores = *p.Scores
	}

	if p.RoundPoints != nil {
		g.RoundPoints = *p.RoundPoints
	}

	if p.ContestScore != nil {
		g.ContestScore = *p.ContestScore
	}

	if p.IsCoinched != nil {
		g.IsCoinched = *p.IsCoinched
	}

	if p.BaseStatus != nil {
		g.BaseStatus = *p.BaseStatus
	}

	if p.BaseClaimer != nil {
		g.BaseClaimer = *p.BaseClaimer
	}

	if p.ClearExposed {
		g.ExposedHands = nil
	} else if p.ExposedHands != nil {
		g.ExposedHands = p.ExposedHands
	}

	if p.LastTrickWinner != nil {
		g.LastTrickWinner = *p.LastTrickWinner
	}

	for seat, ledger := range p.IllegalMoves {
		if seat >= 0 && seat < 4 {
			g.IllegalMoves[seat] = ledger
		}
	}

	if p.ClearPlayerBids {
		g.PlayerBids = nil
	} else if len(p.PlayerBids) > 0 {
		if g.PlayerBids == nil {
			g.PlayerBids = make(map[int]string)
		}

		for seat, bid := range p.PlayerBids {
			g.PlayerBids[seat] = bid
		}
	}

	if p.ClearReadyPlayers {
		g.ReadyPlayers = nil
	} else if len(p.ReadyPlayers) > 0 {
		if g.ReadyPlayers == nil {
			g.ReadyPlayers = make(map[int]bool)
		}

		for seat, ready := range p.ReadyPlayers {
			g.ReadyPlayers[seat] = ready
		}
	}

	g.LastUpdated = now
}
