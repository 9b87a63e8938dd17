// Package model provides database-backed records for finished matches.
package model

import (
	"context"
	"time"

	"carti-server/pkg/carti"
	"carti-server/pkg/db"
)

const matchColumns = `
matches.id,
matches.room_id,
matches.winning_team,
matches.team1_score,
matches.team2_score,
matches.contest_team1,
matches.contest_team2,
matches.created`

// Match is the persisted record of a completed match
type Match struct {
	ID          int64     `json:"id"`
	RoomID      string    `json:"roomId"`
	WinningTeam int       `json:"winningTeam"`
	Team1Score  int       `json:"team1Score"`
	Team2Score  int       `json:"team2Score"`
	// contest columns are the running set counts at the time the match ended
	ContestTeam1 int       `json:"contestTeam1"`
	ContestTeam2 int       `json:"contestTeam2"`
	Created      time.Time `json:"created"`
}

func matchByRow(row db.Scanner) (*Match, error) {
	var m Match
	if err := row.Scan(&m.ID, &m.RoomID, &m.WinningTeam, &m.Team1Score, &m.Team2Score,
		&m.ContestTeam1, &m.ContestTeam2, &m.Created); err != nil {
		return nil, err
	}

	return &m, nil
}

// CreateMatch records a finished match
func CreateMatch(ctx context.Context, roomID string, winningTeam int, scores, contest carti.TeamPoints) (*Match, error) {
	const query = `
INSERT INTO matches (room_id, winning_team, team1_score, team2_score, contest_team1, contest_team2)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + matchColumns

	row := db.Instance().QueryRowContext(ctx, query, roomID, winningTeam,
		scores.Team1, scores.Team2, contest.Team1, contest.Team2)
	return matchByRow(row)
}

// MatchesByRoom returns the matches played in a room, most recent first
func MatchesByRoom(ctx context.Context, roomID string, start int64, rows int) ([]*Match, error) {
	const query = `
SELECT ` + matchColumns + `
FROM matches
WHERE room_id = $1
ORDER BY created DESC
OFFSET $2 LIMIT $3`

	res, err := db.Instance().QueryContext(ctx, query, roomID, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	matches := make([]*Match, 0)
	for res.Next() {
		m, err := matchByRow(res)
		if err != nil {
			return nil, err
		}

		matches = append(matches, m)
	}

	return matches, res.Err()
}

// Recorder adapts the matches table to the game orchestrator's
// MatchRecorder interface
type Recorder struct{}

// RecordMatch implements game.MatchRecorder
func (Recorder) RecordMatch(roomID string, winningTeam int, scores, contestScores carti.TeamPoints) error {
	_, err := CreateMatch(context.Background(), roomID, winningTeam, scores, contestScores)
	return err
}
