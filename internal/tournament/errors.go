package tournament

import (
	"errors"
	"fmt"
)

var (
	// ErrPlayerNotFound is returned by lookups for an id that is not registered.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidPlayerName is returned when registering a blank name.
	ErrInvalidPlayerName = errors.New("player name must not be blank")
	// ErrRematchUnavoidable flags a round that had to repeat a pairing.
	// It is never returned as an operation error; see Round.Err.
	ErrRematchUnavoidable = errors.New("rematch unavoidable")
)

// ReferentialError is returned when a match references a player that is not registered.
type ReferentialError struct {
	PlayerID int64
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("player %d is not registered", e.PlayerID)
}

// InvalidMatchError is returned when a player is reported as both winner and loser.
type InvalidMatchError struct {
	PlayerID int64
}

func (e *InvalidMatchError) Error() string {
	return fmt.Sprintf("player %d cannot play against themself", e.PlayerID)
}

// OddPlayerCountError is returned when pairings are requested for an odd number of players.
type OddPlayerCountError struct {
	Count int
}

func (e *OddPlayerCountError) Error() string {
	return fmt.Sprintf("cannot pair an odd number of players (%d); add a bye player or postpone pairing", e.Count)
}
