package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"carti-server/pkg/carti"
	"carti-server/pkg/deck"
	"carti-server/pkg/room"
)

// Bid commits the acting seat to the named contract and passes the turn.
func (g *Game) Bid(label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	contract, ok := carti.ContractNamed(label)
	if !ok {
		return fmt.Errorf("unknown contract: %s", label)
	}

	return g.bid(r, g.seat, &contract)
}

// Pass records a pass and moves the turn along.
func (g *Game) Pass() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	return g.bid(r, g.seat, nil)
}

// Coinche doubles the stakes on the standing contract and closes the
// bidding immediately.
func (g *Game) Coinche() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	return g.coinche(r, g.seat)
}

func (g *Game) bid(r *room.Room, seat int, contract *carti.Contract) error {
	gd := &r.Game
	if gd.Phase != room.PhaseBidding {
		return ErrWrongPhase
	}

	if gd.CurrentPlayer != seat {
		return ErrOutOfTurn
	}

	next := carti.NextSeat(seat)
	patch := room.GamePatch{
		CurrentPlayer: room.Int(next),
	}

	if contract != nil {
		patch.Contract = contract
		patch.Bidder = room.Int(seat)
		patch.PlayerBids = map[int]string{seat: contract.Label}
		g.logger.WithFields(logrus.Fields{
			"bidder":   seat,
			"contract": contract.Label,
		}).Info("contract bid")
	} else {
		patch.PlayerBids = map[int]string{seat: "Pass"}
	}

	if err := g.store.UpdateGame(g.roomID, patch); err != nil {
		return err
	}

	// the auction closes when the rotation comes back to the starter
	if next == gd.Starter {
		return g.finalizeBidding()
	}

	return nil
}

func (g *Game) coinche(r *room.Room, seat int) error {
	gd := &r.Game
	if gd.Phase != room.PhaseBidding {
		return ErrWrongPhase
	}

	if gd.Contract == nil {
		return ErrNoContract
	}

	patch := room.GamePatch{
		IsCoinched: room.Bool(true),
		PlayerBids: map[int]string{seat: "Coinche"},
	}

	if err := g.store.UpdateGame(g.roomID, patch); err != nil {
		return err
	}

	g.logger.WithField("coincher", seat).Info("contract coinched")
	return g.finalizeBidding()
}

// finalizeBidding closes the auction. With a contract on the table the
// talon is dealt out, three cards per seat, and play opens left of the
// dealer. With four passes the round is abandoned and the room drops back
// to INGAME so the next deal can start.
func (g *Game) finalizeBidding() error {
	r, err := g.fresh()
	if err != nil {
		return err
	}

	gd := &r.Game
	if gd.Phase != room.PhaseBidding {
		return ErrWrongPhase
	}

	if gd.Contract == nil {
		g.logger.Info("auction passed out, redealing")
		return g.store.UpdateGame(g.roomID, room.GamePatch{
			Phase:           room.PhaseOf(room.PhaseInGame),
			CurrentPlayer:   room.Int(room.NoSeat),
			Hands:           &[4]deck.Hand{},
			Deck:            room.Cards([]*deck.Card{}),
			ClearPlayerBids: true,
		})
	}

	hands := [4]deck.Hand{}
	talon := gd.Deck
	for seat := 0; seat < 4; seat++ {
		hands[seat] = gd.Hands[seat].Clone()
		for i := 0; i < 3; i++ {
			hands[seat].AddCard(talon[seat*3+i])
		}
		hands[seat].Sort()
	}

	opener := carti.NextSeat(gd.Dealer)
	patch := room.GamePatch{
		Phase:         room.PhaseOf(room.PhasePlaying),
		CurrentPlayer: room.Int(opener),
		Hands:         &hands,
		Deck:          room.Cards([]*deck.Card{}),
		CurrentPli:    room.Pli([]carti.PliEntry{}),
	}

	g.logger.WithFields(logrus.Fields{
		"contract": gd.Contract.Label,
		"opener":   opener,
	}).Info("auction closed, play begins")
	return g.store.UpdateGame(g.roomID, patch)
}
