package game

import (
	"github.com/sirupsen/logrus"

	"carti-server/pkg/carti"
	"carti-server/pkg/deck"
	"carti-server/pkg/room"
)

// evidenceContains reports whether the card is dirty in the ledger. For
// an illegal play or a base audit only the withheld legal alternatives
// count; the played card itself was public and is never matchable. A
// false accusation carries the wrongly accused card in Played.
func evidenceContains(ledger []room.Evidence, card *deck.Card) bool {
	for _, entry := range ledger {
		if entry.Kind == room.EvidenceFalseAccusation {
			if entry.Played != nil && entry.Played.Code == card.Code {
				return true
			}

			continue
		}

		for _, alt := range entry.Alternatives {
			if alt.Code == card.Code {
				return true
			}
		}
	}

	return false
}

// ClaimGat accuses an opponent of having illegally withheld the named
// card. The claim is resolved against the opponent's evidence ledger and
// ends the round either way: full round points to the accuser's team on a
// hit, to the defenders on a miss. During a base review a successful claim
// also overturns the pending base.
func (g *Game) ClaimGat(accused int, code string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	card, err := deck.ParseCard(code)
	if err != nil {
		return err
	}

	gd := &r.Game
	if gd.Phase != room.PhasePlaying && gd.Phase != room.PhaseBaseReview {
		return ErrWrongPhase
	}

	if accused < 0 || accused > 3 || carti.IsTeam1(accused) == carti.IsTeam1(g.seat) {
		return ErrCannotAccuseSelf
	}

	if gd.Contract == nil {
		return ErrNoContract
	}

	trump := gd.Contract.Value
	award := carti.TotalAvailable(trump)
	if gd.IsCoinched {
		award *= 2
	}

	success := evidenceContains(gd.IllegalMoves[accused], card)

	// the award swings to whichever side the evidence favors
	accuserTeam1 := carti.IsTeam1(g.seat)
	result := carti.TeamPoints{}
	if success == accuserTeam1 {
		result.Team1 = award
	} else {
		result.Team2 = award
	}

	status := room.BaseNone
	if gd.Phase == room.PhaseBaseReview && success {
		status = room.BaseOverturned
	}

	patch := room.GamePatch{
		Dealer:            room.Int(carti.NextSeat(gd.Dealer)),
		CurrentPlayer:     room.Int(room.NoSeat),
		RoundPoints:       room.Points(result),
		CurrentPli:        room.Pli([]carti.PliEntry{}),
		Hands:             &[4]deck.Hand{},
		Deck:              room.Cards([]*deck.Card{}),
		SleptCards:        room.Cards([]*deck.Card{}),
		IsCoinched:        room.Bool(false),
		BaseStatus:        room.StatusOf(status),
		BaseClaimer:       room.Int(room.NoSeat),
		LastTrickWinner:   room.Int(room.NoSeat),
		ClearContract:     true,
		ClearExposed:      true,
		ClearPlayerBids:   true,
		ClearReadyPlayers: true,
	}

	g.logger.WithFields(logrus.Fields{
		"accuser": g.seat,
		"accused": accused,
		"card":    card.Code,
		"success": success,
	}).Info("gat claim resolved")

	patch = g.applyMatchScores(gd, gd.Scores.Add(result), patch)
	return g.store.UpdateGame(g.roomID, patch)
}

// ClaimSleep accuses some opponent of fraudulently withholding the named
// card, without naming the holder. A hit neutralizes the card for the rest
// of the round; a miss charges the accuser's own ledger instead.
func (g *Game) ClaimSleep(code string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	card, err := deck.ParseCard(code)
	if err != nil {
		return err
	}

	gd := &r.Game
	if gd.Phase != room.PhasePlaying {
		return ErrWrongPhase
	}

	holder := room.NoSeat
	for seat := 0; seat < 4; seat++ {
		if carti.IsTeam1(seat) == carti.IsTeam1(g.seat) {
			continue
		}

		if gd.Hands[seat].HasCard(card) {
			holder = seat
			break
		}
	}

	if holder != room.NoSeat && evidenceContains(gd.IllegalMoves[holder], card) {
		slept := append([]*deck.Card{}, gd.SleptCards...)
		slept = append(slept, card)

		g.logger.WithFields(logrus.Fields{
			"accuser": g.seat,
			"holder":  holder,
			"card":    card.Code,
		}).Info("card slept")
		return g.store.UpdateGame(g.roomID, room.GamePatch{
			SleptCards: room.Cards(slept),
		})
	}

	// wrong either way: the card is clean, or nobody holds it
	ledger := append([]room.Evidence{}, gd.IllegalMoves[g.seat]...)
	ledger = append(ledger, room.Evidence{
		Kind:   room.EvidenceFalseAccusation,
		Played: card,
	})

	g.logger.WithFields(logrus.Fields{
		"accuser": g.seat,
		"card":    card.Code,
	}).Info("sleep claim failed, accuser charged")
	return g.store.UpdateGame(g.roomID, room.GamePatch{
		IllegalMoves: map[int][]room.Evidence{g.seat: ledger},
	})
}

// ClaimBase declares that every card left in the acting seat's hand is
// unbeatable. All hands are exposed and audited: any of the claimer's
// cards that an opponent can still beat goes into the claimer's ledger,
// where the review phase lets opponents catch it with a Gat claim.
func (g *Game) ClaimBase() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	gd := &r.Game
	if gd.Phase != room.PhasePlaying {
		return ErrWrongPhase
	}

	if gd.LastTrickWinner != g.seat {
		return ErrNotTrickWinner
	}

	if gd.BaseStatus == room.BasePending {
		return ErrBasePending
	}

	if gd.Contract == nil {
		return ErrNoContract
	}

	trump := gd.Contract.Value

	others := make([]deck.Hand, 0, 3)
	for seat := 0; seat < 4; seat++ {
		if seat != g.seat {
			others = append(others, gd.Hands[seat])
		}
	}

	beatable := carti.VerifyBaseClaim(gd.Hands[g.seat], others, trump)

	exposed := [4]deck.Hand{}
	for seat := range gd.Hands {
		exposed[seat] = gd.Hands[seat].Clone()
	}

	patch := room.GamePatch{
		Phase:         room.PhaseOf(room.PhaseBaseReview),
		BaseStatus:    room.StatusOf(room.BasePending),
		BaseClaimer:   room.Int(g.seat),
		CurrentPlayer: room.Int(room.NoSeat),
		ExposedHands:  &exposed,
		// the claimer stands behind their own claim
		ReadyPlayers: map[int]bool{g.seat: true},
	}

	if len(beatable) > 0 {
		ledger := append([]room.Evidence{}, gd.IllegalMoves[g.seat]...)
		ledger = append(ledger, room.Evidence{
			Kind:         room.EvidenceBaseAudit,
			Alternatives: beatable,
		})
		patch.IllegalMoves = map[int][]room.Evidence{g.seat: ledger}
	}

	g.logger.WithFields(logrus.Fields{
		"claimer":  g.seat,
		"beatable": len(beatable),
	}).Info("base claimed, hands exposed")
	return g.store.UpdateGame(g.roomID, patch)
}

// AgreeBase marks the acting seat as accepting the pending base claim.
func (g *Game) AgreeBase() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	if r.Game.Phase != room.PhaseBaseReview {
		return ErrWrongPhase
	}

	return g.store.UpdateGame(g.roomID, room.GamePatch{
		ReadyPlayers: map[int]bool{g.seat: true},
	})
}

// finalizeBase settles an uncontested base claim: every point still in
// play goes to the claimer's team and the round is scored out.
func (g *Game) finalizeBase(r *room.Room) error {
	gd := &r.Game
	if gd.Phase != room.PhaseBaseReview || gd.BaseStatus != room.BasePending {
		return ErrWrongPhase
	}

	trump := gd.Contract.Value

	remaining := 0
	for _, hand := range gd.Hands {
		for _, card := range hand {
			remaining += carti.CardPoints(card, trump)
		}
	}

	roundPoints := gd.RoundPoints
	if carti.IsTeam1(gd.BaseClaimer) {
		roundPoints.Team1 += remaining
	} else {
		roundPoints.Team2 += remaining
	}

	g.logger.WithFields(logrus.Fields{
		"claimer":   gd.BaseClaimer,
		"remaining": remaining,
	}).Info("base claim upheld")

	patch := g.settle(gd, roundPoints, gd.BaseClaimer)
	patch.BaseStatus = room.StatusOf(room.BaseSuccess)
	patch.BaseClaimer = room.Int(room.NoSeat)
	patch.Hands = &[4]deck.Hand{}
	patch.ClearExposed = true
	patch.ClearReadyPlayers = true
	return g.store.UpdateGame(g.roomID, patch)
}
