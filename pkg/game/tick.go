package game

import (
	"time"

	"carti-server/pkg/carti"
	"carti-server/pkg/room"
)

type pendingKind int

const (
	pendingTrick pendingKind = iota
	pendingBotBid
	pendingBotPlay
	pendingBase
)

// pendingAction is a scheduled timed transition. It carries no captured
// state: the room is re-read and the conditions re-checked when the timer
// fires, so an action invalidated by a concurrent write simply evaporates.
type pendingAction struct {
	kind         pendingKind
	seat         int
	executeAfter time.Time
}

// Interval returns how often the runner should call Tick
func (g *Game) Interval() time.Duration {
	return time.Millisecond * 250
}

// isBot reports whether the engine should act for the seat. Empty seats
// are driven like bots so an under-filled room can't stall the game.
func isBot(r *room.Room, seat int) bool {
	p := r.PlayerAt(seat)
	return p == nil || p.Type == room.Bot
}

// Tick drives the room's timed transitions: collecting a completed trick,
// acting for bot seats, and closing out a base review. Only the authority
// seat does any work; everyone else's Tick is a no-op. Returns true if the
// room document was changed.
func (g *Game) Tick() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.authority == nil || !g.authority(g.seat) {
		return false, nil
	}

	r, err := g.fresh()
	if err != nil {
		return false, err
	}

	now := g.clock()

	if g.pending != nil {
		if now.Before(g.pending.executeAfter) {
			return false, nil
		}

		p := *g.pending
		g.pending = nil
		return g.firePending(r, p)
	}

	gd := &r.Game
	switch gd.Phase {
	case room.PhaseBidding:
		if isBot(r, gd.CurrentPlayer) {
			g.pending = &pendingAction{
				kind:         pendingBotBid,
				seat:         gd.CurrentPlayer,
				executeAfter: now.Add(g.options.BotDelay),
			}
		}
	case room.PhasePlaying:
		if len(gd.CurrentPli) == 4 {
			g.pending = &pendingAction{
				kind:         pendingTrick,
				executeAfter: now.Add(g.options.TrickDelay),
			}
		} else if isBot(r, gd.CurrentPlayer) {
			g.pending = &pendingAction{
				kind:         pendingBotPlay,
				seat:         gd.CurrentPlayer,
				executeAfter: now.Add(g.options.BotDelay),
			}
		}
	case room.PhaseBaseReview:
		ready := map[int]bool{}
		for seat := 0; seat < 4; seat++ {
			if isBot(r, seat) && !gd.ReadyPlayers[seat] {
				ready[seat] = true
			}
		}

		if len(ready) > 0 {
			if err := g.store.UpdateGame(g.roomID, room.GamePatch{ReadyPlayers: ready}); err != nil {
				return false, err
			}

			return true, nil
		}

		if allReady(gd) {
			g.pending = &pendingAction{
				kind:         pendingBase,
				executeAfter: now.Add(g.options.BaseReviewDelay),
			}
		}
	}

	return false, nil
}

func allReady(gd *room.GameData) bool {
	for seat := 0; seat < 4; seat++ {
		if !gd.ReadyPlayers[seat] {
			return false
		}
	}

	return true
}

// firePending re-validates a due action against the fresh snapshot and
// executes it. A stale action is dropped without effect.
func (g *Game) firePending(r *room.Room, p pendingAction) (bool, error) {
	gd := &r.Game

	switch p.kind {
	case pendingTrick:
		if gd.Phase != room.PhasePlaying || len(gd.CurrentPli) != 4 {
			return false, nil
		}

		return true, g.finalizeTrick(r)
	case pendingBotBid:
		if gd.Phase != room.PhaseBidding || gd.CurrentPlayer != p.seat || !isBot(r, p.seat) {
			return false, nil
		}

		contract, ok := carti.EvaluateBid(gd.Hands[p.seat])
		if !ok {
			// the opening seat may not pass the auction into a stall
			if p.seat == gd.Starter && gd.Contract == nil {
				contract = carti.Contracts[0]
				ok = true
			}
		}

		if ok {
			return true, g.bid(r, p.seat, &contract)
		}

		return true, g.bid(r, p.seat, nil)
	case pendingBotPlay:
		if gd.Phase != room.PhasePlaying || gd.CurrentPlayer != p.seat || !isBot(r, p.seat) {
			return false, nil
		}

		if gd.Contract == nil || len(gd.Hands[p.seat]) == 0 {
			return false, nil
		}

		index := carti.BotMove(gd.Hands[p.seat], gd.CurrentPli, gd.Contract.Value, p.seat, gd.SleptCards)
		return true, g.playCard(r, p.seat, index)
	case pendingBase:
		if gd.Phase != room.PhaseBaseReview || !allReady(gd) {
			return false, nil
		}

		return true, g.finalizeBase(r)
	}

	return false, nil
}
