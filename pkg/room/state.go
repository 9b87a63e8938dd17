package room

import (
	"time"

	"carti-server/pkg/carti"
	"carti-server/pkg/deck"
)

// Phase is the lifecycle state of a room's current round
type Phase string

// phase constants
const (
	PhaseIdle       Phase = "IDLE"
	PhaseInGame     Phase = "INGAME"
	PhaseBidding    Phase = "BIDDING"
	PhasePlaying    Phase = "PLAYING"
	PhaseBaseReview Phase = "BASE_REVIEW"
)

// NoSeat is the sentinel for "no seat": no active player during the
// trick-finalization pause, no bidder before a contract, etc.
const NoSeat = -1

// PlayerType distinguishes humans from bots
type PlayerType string

// player types
const (
	Human PlayerType = "HUMAN"
	Bot   PlayerType = "BOT"
)

// Player is a seated room participant
type Player struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Avatar  string     `json:"avatar"`
	Seat    int        `json:"seat"`
	Type    PlayerType `json:"type"`
	IsReady bool       `json:"isReady"`
}

// EvidenceKind tags an entry in a seat's illegal-move ledger
type EvidenceKind string

// evidence kinds
const (
	// EvidencePlay records a detected illegal play. Played is the offending
	// card; Alternatives are the cards that would have been legal.
	EvidencePlay EvidenceKind = "play"
	// EvidenceFalseAccusation charges a seat that made a failed Sleep claim.
	// Played is the card they accused.
	EvidenceFalseAccusation EvidenceKind = "false-accusation"
	// EvidenceBaseAudit records the beatable cards found when a seat claimed
	// Base. Alternatives holds the beatable cards.
	EvidenceBaseAudit EvidenceKind = "base-audit"
)

// Evidence is one forensic entry in a seat's illegal-move ledger
type Evidence struct {
	Kind         EvidenceKind `json:"kind"`
	Played       *deck.Card   `json:"played,omitempty"`
	Alternatives []*deck.Card `json:"alternatives,omitempty"`
}

// BaseStatus tracks an in-flight Base claim
type BaseStatus string

// base review states
const (
	BaseNone       BaseStatus = ""
	BasePending    BaseStatus = "PENDING"
	BaseSuccess    BaseStatus = "SUCCESS"
	BaseOverturned BaseStatus = "OVERTURNED"
)

// GameData is the game portion of the room document. Every field is typed;
// consumers must not need to sniff shapes.
type GameData struct {
	Phase           Phase             `json:"phase"`
	Dealer          int               `json:"dealer"`
	Starter         int               `json:"starter"`
	Bidder          int               `json:"bidder"`
	CurrentPlayer   int               `json:"currentPlayer"`
	Contract        *carti.Contract   `json:"contract"`
	Hands           [4]deck.Hand      `json:"hands"`
	Deck            []*deck.Card      `json:"deck"`
	CurrentPli      []carti.PliEntry  `json:"currentPli"`
	PlayedCards     []*deck.Card      `json:"playedCards"`
	IllegalMoves    [4][]Evidence     `json:"illegalMoves"`
	SleptCards      []*deck.Card      `json:"sleptCards"`
	Scores          carti.TeamPoints  `json:"scores"`
	RoundPoints     carti.TeamPoints  `json:"roundPoints"`
	ContestScore    carti.TeamPoints  `json:"contestScore"`
	IsCoinched      bool              `json:"isCoinched"`
	PlayerBids      map[int]string    `json:"playerBids"`
	BaseStatus      BaseStatus        `json:"baseStatus"`
	BaseClaimer     int               `json:"baseClaimer"`
	ExposedHands    *[4]deck.Hand     `json:"exposedHands,omitempty"`
	ReadyPlayers    map[int]bool      `json:"readyPlayers"`
	LastTrickWinner int               `json:"lastTrickWinner"`
	LastUpdated     time.Time         `json:"lastUpdated"`
}

// Room is the full shared room document
type Room struct {
	ID      string     `json:"id"`
	Owner   string     `json:"owner"`
	Players [4]*Player `json:"players"`
	Game    GameData   `json:"gameData"`
}

// Seated returns the seat held by the identity, or NoSeat
func (r *Room) Seated(identity string) int {
	for seat, p := range r.Players {
		if p != nil && p.ID == identity {
			return seat
		}
	}

	return NoSeat
}

// PlayerAt returns the player in the seat, or nil
func (r *Room) PlayerAt(seat int) *Player {
	if seat < 0 || seat > 3 {
		return nil
	}

	return r.Players[seat]
}

func cloneCards(cards []*deck.Card) []*deck.Card {
	if cards == nil {
		return nil
	}

	out := make([]*deck.Card, len(cards))
	copy(out, cards)
	return out
}

func cloneHands(hands [4]deck.Hand) [4]deck.Hand {
	var out [4]deck.Hand
	for i, h := range hands {
		out[i] = h.Clone()
	}

	return out
}

// Clone returns a deep-enough copy of the room: every slice and map is
// copied, the immutable cards themselves are shared.
func (r *Room) Clone() *Room {
	out := *r

	for i, p := range r.Players {
		if p != nil {
			cp := *p
			out.Players[i] = &cp
		}
	}

	g := &out.Game
	g.Hands = cloneHands(r.Game.Hands)
	g.Deck = cloneCards(r.Game.Deck)
	g.PlayedCards = cloneCards(r.Game.PlayedCards)
	g.SleptCards = cloneCards(r.Game.SleptCards)

	g.CurrentPli = make([]carti.PliEntry, len(r.Game.CurrentPli))
	copy(g.CurrentPli, r.Game.CurrentPli)

	for seat, ledger := range r.Game.IllegalMoves {
		cp := make([]Evidence, len(ledger))
		copy(cp, ledger)
		g.IllegalMoves[seat] = cp
	}

	if r.Game.PlayerBids != nil {
		g.PlayerBids = make(map[int]string, len(r.Game.PlayerBids))
		for k, v := range r.Game.PlayerBids {
			g.PlayerBids[k] = v
		}
	}

	if r.Game.ReadyPlayers != nil {
		g.ReadyPlayers = make(map[int]bool, len(r.Game.ReadyPlayers))
		for k, v := range r.Game.ReadyPlayers {
			g.ReadyPlayers[k] = v
		}
	}

	if r.Game.ExposedHands != nil {
		exposed := cloneHands(*r.Game.ExposedHands)
		g.ExposedHands = &exposed
	}

	if r.Game.Contract != nil {
		c := *r.Game.Contract
		g.Contract = &c
	}

	return &out
}

// NewGameData returns a zeroed game document in the IDLE phase
func NewGameData() GameData {
	return GameData{
		Phase:           PhaseIdle,
		Dealer:          NoSeat,
		Starter:         NoSeat,
		Bidder:          NoSeat,
		CurrentPlayer:   NoSeat,
		BaseClaimer:     NoSeat,
		LastTrickWinner: NoSeat,
	}
}
