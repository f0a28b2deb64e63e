package tournament

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Engine produces the pairings of the next round.
type Engine struct {
	store Store
}

// NewEngine creates an Engine reading from the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// NextRound pairs every registered player for the coming round. It fails
// with *OddPlayerCountError when the player count is odd.
func (e *Engine) NextRound(ctx context.Context) (Round, error) {
	players, matches, err := e.store.Snapshot(ctx)
	if err != nil {
		return Round{}, fmt.Errorf("failed to read pairing snapshot: %w", err)
	}
	if len(players)%2 != 0 {
		return Round{}, &OddPlayerCountError{Count: len(players)}
	}

	round := Pair(ComputeStandings(players, matches), NewHistory(matches))
	round.Number = roundNumber(len(players), len(matches))
	if round.RematchUnavoidable {
		log.Warn("Round contains unavoidable rematches", "round", round.Number, "rematches", len(round.Rematches))
	}
	return round, nil
}

// Pair splits the standings into adjacent pairs, top of the table first.
//
// When the two players at a slot have already met, the first one is paired
// with the next player down the standings they have not met instead; the
// players skipped over each move down one place. The search never looks
// back at slots already paired. If no such player exists the adjacent pair
// is kept and recorded as a rematch.
//
// The pass is greedy, so RematchUnavoidable means this pass could not avoid
// a rematch, not that no rematch-free round exists. With history 1-2, 3-4
// and 2-4, the standings 1,2,3,4 pair as (1,3),(2,4) although (1,4),(2,3)
// would avoid every rematch.
func Pair(standings []StandingsRow, history History) Round {
	order := make([]StandingsRow, len(standings))
	copy(order, standings)

	round := Round{Pairings: make([]Pairing, 0, len(order)/2)}
	for i := 0; i+1 < len(order); i += 2 {
		top := order[i]
		if history.Played(top.PlayerID, order[i+1].PlayerID) {
			if j := nextUnplayed(order, i, history); j > 0 {
				promote(order, j, i+1)
			}
		}

		pairing := Pairing{
			Player1ID: top.PlayerID,
			Name1:     top.Name,
			Player2ID: order[i+1].PlayerID,
			Name2:     order[i+1].Name,
		}
		if history.Played(pairing.Player1ID, pairing.Player2ID) {
			round.RematchUnavoidable = true
			round.Rematches = append(round.Rematches, pairing)
		}
		round.Pairings = append(round.Pairings, pairing)
	}
	return round
}

// nextUnplayed returns the first index after i+1 holding a player that
// order[i] has not met, or -1.
func nextUnplayed(order []StandingsRow, i int, history History) int {
	for j := i + 2; j < len(order); j++ {
		if !history.Played(order[i].PlayerID, order[j].PlayerID) {
			return j
		}
	}
	return -1
}

// promote moves order[from] up to index to, shifting the rows in between down.
func promote(order []StandingsRow, from, to int) {
	row := order[from]
	copy(order[to+1:from+1], order[to:from])
	order[to] = row
}

// roundNumber is the number of completed rounds plus one.
func roundNumber(players, matches int) int {
	if players < 2 {
		return 1
	}
	return 2*matches/players + 1
}
