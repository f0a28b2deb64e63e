package main

import (
	"context"
	"math/rand"
	"testing"

	"github.com/mauv0809/swiss-tribble/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTournament(t *testing.T) {
	ctx := context.Background()

	t.Run("plays the requested rounds", func(t *testing.T) {
		service := tournament.NewService(tournament.NewMock())

		require.NoError(t, seedTournament(ctx, service, 6, 3, rand.New(rand.NewSource(1))))

		count, err := service.CountPlayers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, count)
		matches, err := service.Matches(ctx)
		require.NoError(t, err)
		assert.Len(t, matches, 9)
	})

	t.Run("counts players already registered", func(t *testing.T) {
		store := tournament.NewMock()
		service := tournament.NewService(store)
		_, err := service.RegisterPlayer(ctx, "Early Bird")
		require.NoError(t, err)

		err = seedTournament(ctx, service, 4, 1, rand.New(rand.NewSource(1)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "odd count")
		assert.Len(t, store.InsertPlayerCalls, 1, "no players are added when the total would be odd")
		assert.Empty(t, store.InsertMatchCalls)
	})

	t.Run("evens out an odd tournament", func(t *testing.T) {
		service := tournament.NewService(tournament.NewMock())
		_, err := service.RegisterPlayer(ctx, "Early Bird")
		require.NoError(t, err)

		require.NoError(t, seedTournament(ctx, service, 3, 2, rand.New(rand.NewSource(1))))
		matches, err := service.Matches(ctx)
		require.NoError(t, err)
		assert.Len(t, matches, 4)
	})
}
