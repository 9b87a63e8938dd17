package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carti-server/pkg/carti"
	"carti-server/pkg/deck"
)

func TestGamePatch_sparseApply(t *testing.T) {
	a := assert.New(t)

	g := NewGameData()
	g.Dealer = 2
	g.Scores = carti.TeamPoints{Team1: 26, Team2: 52}

	now := time.Now()
	g.apply(GamePatch{
		Phase:         PhaseOf(PhaseBidding),
		CurrentPlayer: Int(3),
	}, now)

	// untouched fields survive
	a.Equal(PhaseBidding, g.Phase)
	a.Equal(3, g.CurrentPlayer)
	a.Equal(2, g.Dealer)
	a.Equal(carti.TeamPoints{Team1: 26, Team2: 52}, g.Scores)
	a.Equal(now, g.LastUpdated)
}

func TestGamePatch_perSeatMerges(t *testing.T) {
	a := assert.New(t)

	g := NewGameData()
	g.IllegalMoves[1] = []Evidence{{Kind: EvidencePlay, Played: deck.CardFromString("7H")}}
	g.PlayerBids = map[int]string{0: "Pass"}

	g.apply(GamePatch{
		IllegalMoves: map[int][]Evidence{
			2: {{Kind: EvidenceFalseAccusation, Played: deck.CardFromString("JS")}},
		},
		PlayerBids:   map[int]string{1: "♥"},
		ReadyPlayers: map[int]bool{3: true},
	}, time.Now())

	// seat 1's ledger is untouched by a patch addressing seat 2
	a.Equal(1, len(g.IllegalMoves[1]))
	a.Equal(1, len(g.IllegalMoves[2]))
	a.Equal("Pass", g.PlayerBids[0])
	a.Equal("♥", g.PlayerBids[1])
	a.True(g.ReadyPlayers[3])
}

func TestGamePatch_clears(t *testing.T) {
	a := assert.New(t)

	g := NewGameData()
	g.Contract = &carti.Contract{Label: "♥", Value: carti.TrumpHearts}
	g.PlayerBids = map[int]string{0: "♥"}
	g.ReadyPlayers = map[int]bool{0: true}
	exposed := [4]deck.Hand{}
	g.ExposedHands = &exposed

	g.apply(GamePatch{
		ClearContract:     true,
		ClearPlayerBids:   true,
		ClearReadyPlayers: true,
		ClearExposed:      true,
	}, time.Now())

	a.Nil(g.Contract)
	a.Nil(g.PlayerBids)
	a.Nil(g.ReadyPlayers)
	a.Nil(g.ExposedHands)
}

func TestRoom_Clone(t *testing.T) {
	a := assert.New(t)

	r := &Room{
		ID:    "test",
		Owner: "owner",
		Game:  NewGameData(),
	}
	r.Players[0] = &Player{ID: "owner", Name: "Owner", Seat: 0, Type: Human}
	r.Game.Hands[0] = deck.CardsFromString("JH,9H")
	r.Game.PlayerBids = map[int]string{0: "♥"}

	clone := r.Clone()
	clone.Players[0].Name = "changed"
	clone.Game.Hands[0][0] = deck.CardFromString("7C")
	clone.Game.PlayerBids[0] = "Pass"

	a.Equal("Owner", r.Players[0].Name)
	a.Equal("JH", r.Game.Hands[0][0].Code)
	a.Equal("♥", r.Game.PlayerBids[0])
}

func TestRoom_Seated(t *testing.T) {
	a := assert.New(t)

	r := &Room{Game: NewGameData()}
	r.Players[2] = &Player{ID: "abc", Seat: 2}

	a.Equal(2, r.Seated("abc"))
	a.Equal(NoSeat, r.Seated("nope"))
	a.Nil(r.PlayerAt(0))
	a.Nil(r.PlayerAt(5))
	a.NotNil(r.PlayerAt(2))
}
