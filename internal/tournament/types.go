package tournament

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for the tournament.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Player is a registered participant. Players are never edited; they only
// disappear through a full reset.
type Player struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	RegisteredAt int64  `json:"registered_at"`
}

// Match is a single completed result. The ledger is append-only.
type Match struct {
	ID        int64 `json:"id"`
	WinnerID  int64 `json:"winner_id"`
	LoserID   int64 `json:"loser_id"`
	Round     int   `json:"round"`
	CreatedAt int64 `json:"created_at"`
}

// StandingsRow is a player's record, derived from the ledger on every query.
type StandingsRow struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Matches  int    `json:"matches"`
}

// Losses is the number of matches the player did not win.
func (r StandingsRow) Losses() int {
	return r.Matches - r.Wins
}

// Pairing is one board of the next round.
type Pairing struct {
	Player1ID int64  `json:"player1_id"`
	Name1     string `json:"name1"`
	Player2ID int64  `json:"player2_id"`
	Name2     string `json:"name2"`
}

// Round is the output of the pairing engine for one round.
type Round struct {
	Number   int       `json:"number"`
	Pairings []Pairing `json:"pairings"`
	// RematchUnavoidable is set when at least one pairing repeats an earlier
	// match because no swap could avoid it. The round is still valid.
	RematchUnavoidable bool      `json:"rematch_unavoidable"`
	Rematches          []Pairing `json:"rematches,omitempty"`
}

// Err reports ErrRematchUnavoidable for degraded rounds and nil otherwise.
// It is advisory: a degraded round can be played as is.
func (r Round) Err() error {
	if r.RematchUnavoidable {
		return ErrRematchUnavoidable
	}
	return nil
}
