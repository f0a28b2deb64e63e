package tournament_test

import (
	"context"
	"testing"

	"github.com/mauv0809/swiss-tribble/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupService returns a service on a fresh database with the given players registered.
func setupService(t *testing.T, names ...string) (tournament.Service, []tournament.Player, func()) {
	t.Helper()

	store, teardown := setupTestDB(t)
	svc := tournament.NewService(store)

	players := make([]tournament.Player, 0, len(names))
	for _, name := range names {
		p, err := svc.RegisterPlayer(context.Background(), name)
		require.NoError(t, err)
		players = append(players, p)
	}
	return svc, players, teardown
}

func names(rows []tournament.StandingsRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestComputeStandings(t *testing.T) {
	players := []tournament.Player{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}

	t.Run("no matches keeps registration order", func(t *testing.T) {
		rows := tournament.ComputeStandings(players, nil)
		assert.Equal(t, []string{"A", "B", "C"}, names(rows))
		for _, r := range rows {
			assert.Zero(t, r.Wins)
			assert.Zero(t, r.Matches)
		}
	})

	t.Run("sorts by wins and breaks ties by id", func(t *testing.T) {
		matches := []tournament.Match{
			{WinnerID: 3, LoserID: 1},
			{WinnerID: 2, LoserID: 1},
		}
		rows := tournament.ComputeStandings(players, matches)
		assert.Equal(t, []string{"B", "C", "A"}, names(rows))
		assert.Equal(t, 2, rows[2].Matches)
		assert.Equal(t, 2, rows[2].Losses())
	})

	t.Run("input order does not matter", func(t *testing.T) {
		shuffled := []tournament.Player{players[2], players[0], players[1]}
		rows := tournament.ComputeStandings(shuffled, nil)
		assert.Equal(t, []string{"A", "B", "C"}, names(rows))
	})

	t.Run("ignores matches of unknown players", func(t *testing.T) {
		rows := tournament.ComputeStandings(players, []tournament.Match{{WinnerID: 9, LoserID: 1}})
		assert.Equal(t, 1, rows[0].Matches, "A still played the match")
		for _, r := range rows {
			assert.Zero(t, r.Wins)
		}
	})
}

func TestStandings(t *testing.T) {
	ctx := context.Background()

	t.Run("four players without results", func(t *testing.T) {
		svc, _, teardown := setupService(t, "A", "B", "C", "D")
		defer teardown()

		rows, err := svc.Standings(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, names(rows))
		for _, r := range rows {
			assert.Equal(t, 0, r.Wins)
			assert.Equal(t, 0, r.Matches)
		}
	})

	t.Run("first round results", func(t *testing.T) {
		svc, p, teardown := setupService(t, "A", "B", "C", "D")
		defer teardown()

		_, err := svc.ReportMatch(ctx, p[0].ID, p[1].ID)
		require.NoError(t, err)
		_, err = svc.ReportMatch(ctx, p[2].ID, p[3].ID)
		require.NoError(t, err)

		rows, err := svc.Standings(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C", "B", "D"}, names(rows))
		assert.Equal(t, tournament.StandingsRow{PlayerID: p[0].ID, Name: "A", Wins: 1, Matches: 1}, rows[0])
		assert.Equal(t, tournament.StandingsRow{PlayerID: p[2].ID, Name: "C", Wins: 1, Matches: 1}, rows[1])
		assert.Equal(t, tournament.StandingsRow{PlayerID: p[1].ID, Name: "B", Wins: 0, Matches: 1}, rows[2])
		assert.Equal(t, tournament.StandingsRow{PlayerID: p[3].ID, Name: "D", Wins: 0, Matches: 1}, rows[3])
	})

	t.Run("repeated calls return identical ordering", func(t *testing.T) {
		svc, p, teardown := setupService(t, "A", "B", "C", "D", "E", "F")
		defer teardown()

		_, err := svc.ReportMatch(ctx, p[5].ID, p[0].ID)
		require.NoError(t, err)
		_, err = svc.ReportMatch(ctx, p[3].ID, p[2].ID)
		require.NoError(t, err)

		first, err := svc.Standings(ctx)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := svc.Standings(ctx)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("reporting a match changes exactly two rows", func(t *testing.T) {
		svc, p, teardown := setupService(t, "A", "B", "C", "D")
		defer teardown()

		_, err := svc.ReportMatch(ctx, p[0].ID, p[1].ID)
		require.NoError(t, err)
		before := byID(t, svc)

		_, err = svc.ReportMatch(ctx, p[3].ID, p[0].ID)
		require.NoError(t, err)
		after := byID(t, svc)

		assert.Equal(t, before[p[3].ID].Wins+1, after[p[3].ID].Wins)
		assert.Equal(t, before[p[3].ID].Matches+1, after[p[3].ID].Matches)
		assert.Equal(t, before[p[0].ID].Wins, after[p[0].ID].Wins)
		assert.Equal(t, before[p[0].ID].Matches+1, after[p[0].ID].Matches)
		assert.Equal(t, before[p[1].ID], after[p[1].ID])
		assert.Equal(t, before[p[2].ID], after[p[2].ID])
	})

	t.Run("every player once and match totals add up", func(t *testing.T) {
		svc, p, teardown := setupService(t, "A", "B", "C", "D", "E")
		defer teardown()

		results := [][2]int{{0, 1}, {2, 3}, {4, 0}, {1, 2}, {3, 4}, {0, 2}}
		for _, r := range results {
			_, err := svc.ReportMatch(ctx, p[r[0]].ID, p[r[1]].ID)
			require.NoError(t, err)
		}

		rows, err := svc.Standings(ctx)
		require.NoError(t, err)
		matches, err := svc.Matches(ctx)
		require.NoError(t, err)

		seen := make(map[int64]bool)
		total := 0
		for _, r := range rows {
			assert.False(t, seen[r.PlayerID], "player %d listed twice", r.PlayerID)
			seen[r.PlayerID] = true
			assert.LessOrEqual(t, r.Wins, r.Matches)
			total += r.Matches
		}
		assert.Len(t, seen, len(p))
		assert.Equal(t, 2*len(matches), total)
	})
}

func byID(t *testing.T, svc tournament.Service) map[int64]tournament.StandingsRow {
	t.Helper()
	rows, err := svc.Standings(context.Background())
	require.NoError(t, err)
	out := make(map[int64]tournament.StandingsRow, len(rows))
	for _, r := range rows {
		out[r.PlayerID] = r
	}
	return out
}
