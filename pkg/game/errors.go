package game

import (
	"errors"
)

// ErrWrongPhase is an error when an action is attempted in the wrong phase
var ErrWrongPhase = errors.New("action not valid in the current phase")

// ErrOutOfTurn is returned when it's not the acting seat's turn
var ErrOutOfTurn = errors.New("not player's turn")

// ErrNoContract is returned when a coinche is attempted with no contract on the table
var ErrNoContract = errors.New("no contract to coinche")

// ErrCardOutOfRange is returned when a play references a card index the hand doesn't have
var ErrCardOutOfRange = errors.New("card index out of range")

// ErrNotSeated is returned when the acting identity holds no seat in the room
var ErrNotSeated = errors.New("player is not seated")

// ErrCannotAccuseSelf is returned when a GAT or Sleep targets the accuser's own team
var ErrCannotAccuseSelf = errors.New("cannot accuse your own team")

// ErrNotTrickWinner is returned when a Base claim comes from a seat that
// didn't win the most recent trick
var ErrNotTrickWinner = errors.New("only the last trick's winner can claim base")

// ErrBasePending is returned when a second Base claim arrives during a review
var ErrBasePending = errors.New("a base claim is already under review")
