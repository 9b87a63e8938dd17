// Package game orchestrates a carti match over a shared room document.
//
// Every participant runs a Game bound to their own seat. Actions validate
// against a fresh snapshot of the room and commit a single sparse patch,
// so concurrent writers converge on the store's merge semantics. Timed
// transitions (trick collection, bot turns, base review) only run on the
// seat the Authority function designates, normally the room owner.
package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"carti-server/pkg/carti"
	"carti-server/pkg/deck"
	"carti-server/pkg/room"
)

const (
	// a team wins the match at or above this score, provided it is strictly ahead
	winThreshold = 100

	// a team's first points in a match carry this base on top
	baseScore = 26
)

// Authority decides whether a seat runs the room's timed transitions.
type Authority func(seat int) bool

// HostAuthority grants timed transitions to seat 0 only.
func HostAuthority(seat int) bool {
	return seat == 0
}

// MatchRecorder persists the outcome of a finished match.
type MatchRecorder interface {
	RecordMatch(roomID string, winningTeam int, scores, contestScores carti.TeamPoints) error
}

// Options configure per-game timing. Zero delays fire on the next tick,
// which is what the tests want.
type Options struct {
	// TrickDelay is how long a completed trick stays on the table
	TrickDelay time.Duration

	// BotDelay is how long a bot pretends to think
	BotDelay time.Duration

	// BaseReviewDelay is how long the exposed hands stay visible after
	// the last seat agrees
	BaseReviewDelay time.Duration
}

// DefaultOptions returns the delays used in live rooms.
func DefaultOptions() Options {
	return Options{
		TrickDelay:      time.Second * 2,
		BotDelay:        time.Millisecond * 1500,
		BaseReviewDelay: time.Millisecond * 2500,
	}
}

// Game binds one seat to a room document.
type Game struct {
	store     room.Store
	roomID    string
	seat      int
	authority Authority
	options   Options
	logger    logrus.FieldLogger
	recorder  MatchRecorder

	mu      sync.Mutex
	clock   func() time.Time
	rand    *rand.Rand
	pending *pendingAction
}

// New creates a Game for the given seat.
func New(logger logrus.FieldLogger, store room.Store, roomID string, seat int, authority Authority, options Options) *Game {
	return &Game{
		store:     store,
		roomID:    roomID,
		seat:      seat,
		authority: authority,
		options:   options,
		logger:    logger.WithFields(logrus.Fields{"room": roomID, "seat": seat}),
		clock:     time.Now,
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRecorder attaches an optional match recorder. Only the authority
// seat's recorder is ever invoked.
func (g *Game) SetRecorder(r MatchRecorder) {
	g.recorder = r
}

// Seat returns the seat this Game acts for.
func (g *Game) Seat() int {
	return g.seat
}

func (g *Game) fresh() (*room.Room, error) {
	return g.store.Get(g.roomID)
}

// StartGame moves an idle room into a match. The dealer is drawn at
// random; the first round still needs an explicit StartRound.
func (g *Game) StartGame() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	if r.Game.Phase != room.PhaseIdle {
		return ErrWrongPhase
	}

	dealer := g.rand.Intn(4)
	patch := room.GamePatch{
		Phase:             room.PhaseOf(room.PhaseInGame),
		Dealer:            room.Int(dealer),
		Starter:           room.Int(carti.NextSeat(dealer)),
		Bidder:            room.Int(room.NoSeat),
		CurrentPlayer:     room.Int(carti.NextSeat(dealer)),
		IsCoinched:        room.Bool(false),
		Scores:            room.Points(carti.TeamPoints{}),
		RoundPoints:       room.Points(carti.TeamPoints{}),
		PlayedCards:       room.Cards([]*deck.Card{}),
		SleptCards:        room.Cards([]*deck.Card{}),
		CurrentPli:        room.Pli([]carti.PliEntry{}),
		LastTrickWinner:   room.Int(room.NoSeat),
		BaseStatus:        room.StatusOf(room.BaseNone),
		BaseClaimer:       room.Int(room.NoSeat),
		Hands:             &[4]deck.Hand{},
		ClearContract:     true,
		ClearExposed:      true,
		ClearPlayerBids:   true,
		ClearReadyPlayers: true,
	}

	g.logger.WithField("dealer", dealer).Info("game started")
	return g.store.UpdateGame(g.roomID, patch)
}

// StartRound shuffles a fresh deck, rotates the dealer, deals five cards
// to every seat and opens the bidding.
func (g *Game) StartRound() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	if r.Game.Phase != room.PhaseInGame {
		return ErrWrongPhase
	}

	return g.startRound(r)
}

func (g *Game) startRound(r *room.Room) error {
	d := deck.New()
	d.Shuffle()

	dealer := carti.NextSeat(r.Game.Dealer)
	starter := carti.NextSeat(dealer)

	patch := room.GamePatch{
		Phase:             room.PhaseOf(room.PhaseBidding),
		Dealer:            room.Int(dealer),
		Starter:           room.Int(starter),
		Bidder:            room.Int(room.NoSeat),
		CurrentPlayer:     room.Int(starter),
		IsCoinched:        room.Bool(false),
		RoundPoints:       room.Points(carti.TeamPoints{}),
		PlayedCards:       room.Cards([]*deck.Card{}),
		SleptCards:        room.Cards([]*deck.Card{}),
		CurrentPli:        room.Pli([]carti.PliEntry{}),
		LastTrickWinner:   room.Int(room.NoSeat),
		BaseStatus:        room.StatusOf(room.BaseNone),
		BaseClaimer:       room.Int(room.NoSeat),
		ClearContract:     true,
		ClearExposed:      true,
		ClearPlayerBids:   true,
		ClearReadyPlayers: true,
		IllegalMoves: map[int][]room.Evidence{
			0: {}, 1: {}, 2: {}, 3: {},
		},
	}

	var hands [4]deck.Hand
	for seat := 0; seat < 4; seat++ {
		for i := 0; i < 5; i++ {
			card, err := d.Draw()
			if err != nil {
				return err
			}
			hands[seat].AddCard(card)
		}
		hands[seat].Sort()
	}

	patch.Hands = &hands
	patch.Deck = room.Cards(d.Cards)

	g.logger.WithFields(logrus.Fields{
		"dealer":  dealer,
		"starter": starter,
	}).Info("round started")
	return g.store.UpdateGame(g.roomID, patch)
}
