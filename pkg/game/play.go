package game

import (
	"github.com/sirupsen/logrus"

	"carti-server/pkg/carti"
	"carti-server/pkg/deck"
	"carti-server/pkg/room"
)

// PlayCard plays the card at the given index of the acting seat's hand.
//
// Illegal plays are not blocked. The card hits the table either way; a
// play that violates the follow/cut/over-trump rules is recorded in the
// seat's evidence ledger, with the legal alternatives, for opponents to
// discover with a Gat claim later.
func (g *Game) PlayCard(cardIndex int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, err := g.fresh()
	if err != nil {
		return err
	}

	return g.playCard(r, g.seat, cardIndex)
}

func (g *Game) playCard(r *room.Room, seat, cardIndex int) error {
	gd := &r.Game
	if gd.Phase != room.PhasePlaying {
		return ErrWrongPhase
	}

	if gd.CurrentPlayer != seat {
		return ErrOutOfTurn
	}

	if gd.Contract == nil {
		return ErrNoContract
	}

	hand := gd.Hands[seat].Clone()
	if cardIndex < 0 || cardIndex >= len(hand) {
		return ErrCardOutOfRange
	}

	trump := gd.Contract.Value
	card := hand[cardIndex]
	remaining := append(hand[:cardIndex:cardIndex], hand[cardIndex+1:]...)

	patch := room.GamePatch{}

	// audit against the hand with the card already removed: if the played
	// card was the last of the lead suit, following was not possible
	if len(gd.CurrentPli) > 0 {
		lead := gd.CurrentPli[0].Card
		highest := carti.HighestEntry(gd.CurrentPli, trump, gd.SleptCards)
		partnerWinning := highest.Player == carti.PartnerOf(seat)

		if carti.IsMoveIllegal(card, remaining, lead, trump, highest.Card, partnerWinning) {
			alternatives := make([]*deck.Card, 0, len(remaining))
			for _, i := range carti.LegalMoves(remaining, gd.CurrentPli, trump, seat, gd.SleptCards) {
				alternatives = append(alternatives, remaining[i])
			}

			ledger := append([]room.Evidence{}, gd.IllegalMoves[seat]...)
			ledger = append(ledger, room.Evidence{
				Kind:         room.EvidencePlay,
				Played:       card,
				Alternatives: alternatives,
			})
			patch.IllegalMoves = map[int][]room.Evidence{seat: ledger}

			g.logger.WithFields(logrus.Fields{
				"player": seat,
				"card":   card.Code,
			}).Info("illegal play recorded")
		}
	}

	hands := [4]deck.Hand{}
	for i := range gd.Hands {
		hands[i] = gd.Hands[i].Clone()
	}
	hands[seat] = remaining

	trick := append([]carti.PliEntry{}, gd.CurrentPli...)
	trick = append(trick, carti.PliEntry{Card: card, Player: seat})

	played := append([]*deck.Card{}, gd.PlayedCards...)
	played = append(played, card)

	next := carti.NextSeat(seat)
	if len(trick) == 4 {
		// nobody acts while a full trick waits on the table
		next = room.NoSeat
	}

	patch.Hands = &hands
	patch.CurrentPli = room.Pli(trick)
	patch.PlayedCards = room.Cards(played)
	patch.CurrentPlayer = room.Int(next)

	return g.store.UpdateGame(g.roomID, patch)
}

// finalizeTrick collects a completed trick: credit its points, hand the
// lead to the winner, and on the eighth trick settle the round.
func (g *Game) finalizeTrick(r *room.Room) error {
	gd := &r.Game
	if gd.Phase != room.PhasePlaying || len(gd.CurrentPli) != 4 {
		return ErrWrongPhase
	}

	trump := gd.Contract.Value
	winner := carti.WinnerOfTrick(gd.CurrentPli, trump, gd.SleptCards)
	points := carti.TrickPoints(gd.CurrentPli, trump)

	roundPoints := gd.RoundPoints
	if carti.IsTeam1(winner) {
		roundPoints.Team1 += points
	} else {
		roundPoints.Team2 += points
	}

	lastTrick := true
	for _, h := range gd.Hands {
		if len(h) > 0 {
			lastTrick = false
			break
		}
	}

	if !lastTrick {
		g.logger.WithFields(logrus.Fields{
			"winner": winner,
			"points": points,
		}).Debug("trick collected")
		return g.store.UpdateGame(g.roomID, room.GamePatch{
			CurrentPli:      room.Pli([]carti.PliEntry{}),
			RoundPoints:     room.Points(roundPoints),
			CurrentPlayer:   room.Int(winner),
			LastTrickWinner: room.Int(winner),
		})
	}

	patch := g.settle(gd, roundPoints, winner)
	return g.store.UpdateGame(g.roomID, patch)
}

// settle runs the scoring chain on a completed round and builds the patch
// that either declares a match winner or tees up the next deal.
func (g *Game) settle(gd *room.GameData, raw carti.TeamPoints, lastTrickWinner int) room.GamePatch {
	trump := gd.Contract.Value

	final := carti.FinalPoints(raw, gd.IsCoinched, gd.Bidder, trump, lastTrickWinner)
	r1, r2 := carti.BeloteRound(final.Team1, final.Team2, carti.BigGame(trump))

	scores := carti.TeamPoints{
		Team1: gd.Scores.Team1 + r1,
		Team2: gd.Scores.Team2 + r2,
	}

	// a team's first points of the match carry the base on top
	if gd.Scores.Team1 == 0 && r1 > 0 {
		scores.Team1 += baseScore
	}
	if gd.Scores.Team2 == 0 && r2 > 0 {
		scores.Team2 += baseScore
	}

	patch := room.GamePatch{
		CurrentPli:      room.Pli([]carti.PliEntry{}),
		RoundPoints:     room.Points(carti.TeamPoints{Team1: r1, Team2: r2}),
		CurrentPlayer:   room.Int(room.NoSeat),
		LastTrickWinner: room.Int(lastTrickWinner),
		ClearContract:   true,
		ClearPlayerBids: true,
	}

	return g.applyMatchScores(gd, scores, patch)
}

// applyMatchScores folds new running totals into the patch, closing out
// the match when a team is at the threshold and strictly ahead.
func (g *Game) applyMatchScores(gd *room.GameData, scores carti.TeamPoints, patch room.GamePatch) room.GamePatch {
	winningTeam := 0
	if scores.Team1 >= winThreshold && scores.Team1 > scores.Team2 {
		winningTeam = 1
	} else if scores.Team2 >= winThreshold && scores.Team2 > scores.Team1 {
		winningTeam = 2
	}

	if winningTeam == 0 {
		patch.Phase = room.PhaseOf(room.PhaseInGame)
		patch.Scores = room.Points(scores)

		g.logger.WithFields(logrus.Fields{
			"team1": scores.Team1,
			"team2": scores.Team2,
		}).Info("round settled")
		return patch
	}

	contest := gd.ContestScore
	if winningTeam == 1 {
		contest.Team1++
	} else {
		contest.Team2++
	}

	patch.Phase = room.PhaseOf(room.PhaseIdle)
	patch.Scores = room.Points(carti.TeamPoints{})
	patch.ContestScore = room.Points(contest)

	g.logger.WithFields(logrus.Fields{
		"winningTeam": winningTeam,
		"team1":       scores.Team1,
		"team2":       scores.Team2,
	}).Info("match won")

	if g.recorder != nil {
		if err := g.recorder.RecordMatch(g.roomID, winningTeam, scores, contest); err != nil {
			g.logger.WithError(err).Error("could not record match result")
		}
	}

	return patch
}
