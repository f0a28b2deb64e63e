package tournament_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/mauv0809/swiss-tribble/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(ids ...int64) []tournament.StandingsRow {
	out := make([]tournament.StandingsRow, len(ids))
	for i, id := range ids {
		out[i] = tournament.StandingsRow{PlayerID: id, Name: string(rune('A' + id - 1))}
	}
	return out
}

func pairIDs(round tournament.Round) [][2]int64 {
	out := make([][2]int64, len(round.Pairings))
	for i, p := range round.Pairings {
		out[i] = [2]int64{p.Player1ID, p.Player2ID}
	}
	return out
}

func TestPair(t *testing.T) {
	t.Run("adjacent pairs without history", func(t *testing.T) {
		round := tournament.Pair(rows(1, 2, 3, 4), tournament.NewHistory(nil))
		assert.Equal(t, [][2]int64{{1, 2}, {3, 4}}, pairIDs(round))
		assert.False(t, round.RematchUnavoidable)
		assert.NoError(t, round.Err())
		assert.Equal(t, "A", round.Pairings[0].Name1)
		assert.Equal(t, "B", round.Pairings[0].Name2)
	})

	t.Run("swaps in the next eligible player to avoid a rematch", func(t *testing.T) {
		// A (1) and C (3) met in round one and are tied at the top again.
		history := tournament.NewHistory([]tournament.Match{{WinnerID: 1, LoserID: 3}})
		round := tournament.Pair(rows(1, 3, 2, 4), history)
		assert.Equal(t, [][2]int64{{1, 2}, {3, 4}}, pairIDs(round))
		assert.False(t, round.RematchUnavoidable)
		assert.Empty(t, round.Rematches)
	})

	t.Run("skipped players move down one place", func(t *testing.T) {
		history := tournament.NewHistory([]tournament.Match{
			{WinnerID: 1, LoserID: 2},
			{WinnerID: 1, LoserID: 3},
		})
		round := tournament.Pair(rows(1, 2, 3, 4, 5, 6), history)
		assert.Equal(t, [][2]int64{{1, 4}, {2, 3}, {5, 6}}, pairIDs(round))
		assert.False(t, round.RematchUnavoidable)
	})

	t.Run("flags a rematch when no swap exists", func(t *testing.T) {
		history := tournament.NewHistory([]tournament.Match{{WinnerID: 2, LoserID: 1}})
		round := tournament.Pair(rows(1, 2), history)
		assert.Equal(t, [][2]int64{{1, 2}}, pairIDs(round))
		assert.True(t, round.RematchUnavoidable)
		assert.ErrorIs(t, round.Err(), tournament.ErrRematchUnavoidable)
		require.Len(t, round.Rematches, 1)
		assert.Equal(t, round.Pairings[0], round.Rematches[0])
	})

	t.Run("greedy pass can flag a rematch another order would avoid", func(t *testing.T) {
		history := tournament.NewHistory([]tournament.Match{
			{WinnerID: 1, LoserID: 2},
			{WinnerID: 3, LoserID: 4},
			{WinnerID: 2, LoserID: 4},
		})
		round := tournament.Pair(rows(1, 2, 3, 4), history)
		assert.Equal(t, [][2]int64{{1, 3}, {2, 4}}, pairIDs(round), "1 takes 3 and strands 2 with 4")
		assert.True(t, round.RematchUnavoidable)
		require.Len(t, round.Rematches, 1)
		assert.Equal(t, int64(2), round.Rematches[0].Player1ID)
		assert.Equal(t, int64(4), round.Rematches[0].Player2ID)
	})

	t.Run("everyone has met everyone", func(t *testing.T) {
		var matches []tournament.Match
		for a := int64(1); a <= 4; a++ {
			for b := a + 1; b <= 4; b++ {
				matches = append(matches, tournament.Match{WinnerID: a, LoserID: b})
			}
		}
		round := tournament.Pair(rows(1, 2, 3, 4), tournament.NewHistory(matches))
		assert.Equal(t, [][2]int64{{1, 2}, {3, 4}}, pairIDs(round), "falls back to adjacent pairs")
		assert.True(t, round.RematchUnavoidable)
		assert.Len(t, round.Rematches, 2)
	})

	t.Run("does not modify the standings", func(t *testing.T) {
		standings := rows(1, 2, 3, 4)
		history := tournament.NewHistory([]tournament.Match{{WinnerID: 1, LoserID: 2}})
		tournament.Pair(standings, history)
		assert.Equal(t, rows(1, 2, 3, 4), standings)
	})

	t.Run("empty standings", func(t *testing.T) {
		round := tournament.Pair(nil, tournament.NewHistory(nil))
		assert.Empty(t, round.Pairings)
		assert.False(t, round.RematchUnavoidable)
	})
}

func TestNextRoundPairings(t *testing.T) {
	ctx := context.Background()

	t.Run("first round pairs in registration order", func(t *testing.T) {
		svc, p, teardown := setupService(t, "A", "B", "C", "D")
		defer teardown()

		round, err := svc.NextRoundPairings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, round.Number)
		assert.Equal(t, []tournament.Pairing{
			{Player1ID: p[0].ID, Name1: "A", Player2ID: p[1].ID, Name2: "B"},
			{Player1ID: p[2].ID, Name1: "C", Player2ID: p[3].ID, Name2: "D"},
		}, round.Pairings)
	})

	t.Run("second round pairs winners with winners", func(t *testing.T) {
		svc, p, teardown := setupService(t, "A", "B", "C", "D")
		defer teardown()

		_, err := svc.ReportMatch(ctx, p[0].ID, p[1].ID)
		require.NoError(t, err)
		_, err = svc.ReportMatch(ctx, p[2].ID, p[3].ID)
		require.NoError(t, err)

		round, err := svc.NextRoundPairings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, round.Number)
		assert.Equal(t, []tournament.Pairing{
			{Player1ID: p[0].ID, Name1: "A", Player2ID: p[2].ID, Name2: "C"},
			{Player1ID: p[1].ID, Name1: "B", Player2ID: p[3].ID, Name2: "D"},
		}, round.Pairings)
		assert.False(t, round.RematchUnavoidable)
	})

	t.Run("avoids pairing players who already met", func(t *testing.T) {
		svc, p, teardown := setupService(t, "A", "B", "C", "D", "E", "F")
		defer teardown()
		a, b, c, d, e, f := p[0].ID, p[1].ID, p[2].ID, p[3].ID, p[4].ID, p[5].ID

		// Round one: A-C, B-D, E-F. Round two: B-A, C-D, E-F.
		for _, r := range [][2]int64{{a, c}, {b, d}, {e, f}, {b, a}, {c, d}, {e, f}} {
			_, err := svc.ReportMatch(ctx, r[0], r[1])
			require.NoError(t, err)
		}

		standings, err := svc.Standings(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "E", "A", "C", "D", "F"}, names(standings))

		round, err := svc.NextRoundPairings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, round.Number)
		assert.Equal(t, [][2]int64{{b, e}, {a, d}, {c, f}}, pairIDs(round))
		assert.False(t, round.RematchUnavoidable)
	})

	t.Run("odd player count", func(t *testing.T) {
		svc, _, teardown := setupService(t, "A", "B", "C")
		defer teardown()

		_, err := svc.NextRoundPairings(ctx)
		var odd *tournament.OddPlayerCountError
		require.True(t, errors.As(err, &odd), "expected OddPlayerCountError, got %v", err)
		assert.Equal(t, 3, odd.Count)
	})

	t.Run("no players", func(t *testing.T) {
		svc, _, teardown := setupService(t)
		defer teardown()

		round, err := svc.NextRoundPairings(ctx)
		require.NoError(t, err)
		assert.Empty(t, round.Pairings)
		assert.Equal(t, 1, round.Number)
	})
}

// TestSwissTournament plays several random tournaments end to end and checks
// the pairing invariants after every round.
func TestSwissTournament(t *testing.T) {
	ctx := context.Background()

	for _, size := range []int{2, 4, 6, 8, 16} {
		svc, _, teardown := setupService(t)
		for i := 0; i < size; i++ {
			_, err := svc.RegisterPlayer(ctx, string(rune('A'+i)))
			require.NoError(t, err)
		}

		rng := rand.New(rand.NewSource(int64(size)))
		for roundNo := 1; roundNo <= 4; roundNo++ {
			round, err := svc.NextRoundPairings(ctx)
			require.NoError(t, err)
			assert.Equal(t, roundNo, round.Number)
			require.Len(t, round.Pairings, size/2)

			standings, err := svc.Standings(ctx)
			require.NoError(t, err)
			rank := make(map[int64]int, len(standings))
			for i, r := range standings {
				rank[r.PlayerID] = i
			}

			seen := make(map[int64]bool, size)
			lastTop := -1
			for _, pairing := range round.Pairings {
				assert.NotEqual(t, pairing.Player1ID, pairing.Player2ID)
				for _, id := range []int64{pairing.Player1ID, pairing.Player2ID} {
					assert.False(t, seen[id], "player %d paired twice in round %d", id, roundNo)
					seen[id] = true
				}
				assert.Less(t, rank[pairing.Player1ID], rank[pairing.Player2ID], "first player is the higher ranked")
				assert.Greater(t, rank[pairing.Player1ID], lastTop, "pairings are in rank order")
				lastTop = rank[pairing.Player1ID]
			}
			assert.Len(t, seen, size)

			again, err := svc.NextRoundPairings(ctx)
			require.NoError(t, err)
			assert.Equal(t, round, again, "pairing is deterministic")

			for _, pairing := range round.Pairings {
				winner, loser := pairing.Player1ID, pairing.Player2ID
				if rng.Intn(2) == 0 {
					winner, loser = loser, winner
				}
				_, err := svc.ReportMatch(ctx, winner, loser)
				require.NoError(t, err)
			}
		}

		matches, err := svc.Matches(ctx)
		require.NoError(t, err)
		assert.Len(t, matches, 4*size/2)
		teardown()
	}
}
