package tournament

import (
	"context"
	"fmt"
	"sort"
)

// Calculator derives standings from the registry and the ledger.
type Calculator struct {
	store Store
}

// NewCalculator creates a Calculator reading from the given store.
func NewCalculator(store Store) *Calculator {
	return &Calculator{store: store}
}

// Standings reads a consistent snapshot and ranks every registered player.
func (c *Calculator) Standings(ctx context.Context) ([]StandingsRow, error) {
	players, matches, err := c.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read standings snapshot: %w", err)
	}
	return ComputeStandings(players, matches), nil
}

// ComputeStandings counts wins and matches per player and orders the rows by
// wins, most first. Equal records keep registration order, so repeated calls
// over the same data always return the same ranking. Matches referencing
// players outside the given set are ignored.
func ComputeStandings(players []Player, matches []Match) []StandingsRow {
	rows := make([]StandingsRow, len(players))
	index := make(map[int64]int, len(players))
	for i, p := range players {
		rows[i] = StandingsRow{PlayerID: p.ID, Name: p.Name}
		index[p.ID] = i
	}

	for _, m := range matches {
		if i, ok := index[m.WinnerID]; ok {
			rows[i].Wins++
			rows[i].Matches++
		}
		if i, ok := index[m.LoserID]; ok {
			rows[i].Matches++
		}
	}

	// Ids are handed out in registration order.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
	return rows
}
