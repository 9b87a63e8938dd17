// Package carti implements the rules of the Carti trick-taking game: card
// power and point tables, move legality, trick resolution, bidding and bot
// heuristics, and round scoring. Every function in this package is pure;
// phase and turn enforcement live with the orchestrator in pkg/game.
package carti

import (
	"carti-server/pkg/deck"
)

// Trump identifies the regime a round is played under: one of the four
// concrete suits, AllTrump, or NoTrump.
type Trump string

// trump regimes
const (
	TrumpClubs    = Trump(deck.Clubs)
	TrumpDiamonds = Trump(deck.Diamonds)
	TrumpHearts   = Trump(deck.Hearts)
	TrumpSpades   = Trump(deck.Spades)
	AllTrump      Trump = "ALL"
	NoTrump       Trump = "NONE"
)

// IsSuit returns true if the trump is a concrete suit rather than the
// ALL or NONE regime
func (t Trump) IsSuit() bool {
	return t != AllTrump && t != NoTrump
}

// Contract is a winning bid
type Contract struct {
	Label string `json:"label"`
	Value Trump  `json:"value"`
}

// Contracts is the fixed bid menu, in escalation order
var Contracts = []Contract{
	{Label: "♣", Value: TrumpClubs},
	{Label: "♦", Value: TrumpDiamonds},
	{Label: "♥", Value: TrumpHearts},
	{Label: "♠", Value: TrumpSpades},
	{Label: "100", Value: NoTrump},
	{Label: "Tou", Value: AllTrump},
}

// ContractNamed returns the menu entry with the given label
func ContractNamed(label string) (Contract, bool) {
	for _, c := range Contracts {
		if c.Label == label {
			return c, true
		}
	}

	return Contract{}, false
}

// PliEntry is one card placed into the current trick
type PliEntry struct {
	Card   *deck.Card `json:"card"`
	Player int        `json:"player"`
}

// TeamPoints is a pair of accumulators, one per team. Seats 0 and 2 are
// team 1, seats 1 and 3 are team 2.
type TeamPoints struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

// Add returns the pairwise sum
func (p TeamPoints) Add(o TeamPoints) TeamPoints {
	return TeamPoints{Team1: p.Team1 + o.Team1, Team2: p.Team2 + o.Team2}
}

// NextSeat returns the seat after the given one in play order
func NextSeat(seat int) int {
	return (seat + 1) % 4
}

// PartnerOf returns the seat of the given seat's teammate
func PartnerOf(seat int) int {
	return (seat + 2) % 4
}

// IsTeam1 returns true if the seat belongs to team 1
func IsTeam1(seat int) bool {
	return seat == 0 || seat == 2
}
