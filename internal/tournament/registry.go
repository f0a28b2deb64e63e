package tournament

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Registry assigns identifiers to players and looks them up.
type Registry struct {
	store Store
}

// NewRegistry creates a Registry on top of the given store.
func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// Register adds a player. Names need not be unique; surrounding whitespace is trimmed.
func (r *Registry) Register(ctx context.Context, name string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrInvalidPlayerName
	}
	player, err := r.store.InsertPlayer(ctx, name)
	if err != nil {
		return Player{}, fmt.Errorf("failed to register player %q: %w", name, err)
	}
	log.Info("Registered player", "playerID", player.ID, "name", player.Name)
	return player, nil
}

func (r *Registry) Count(ctx context.Context) (int, error) {
	players, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(players), nil
}

func (r *Registry) List(ctx context.Context) ([]Player, error) {
	players, err := r.store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// Get looks a player up by id.
func (r *Registry) Get(ctx context.Context, id int64) (Player, error) {
	players, err := r.List(ctx)
	if err != nil {
		return Player{}, err
	}
	for _, p := range players {
		if p.ID == id {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("player %d: %w", id, ErrPlayerNotFound)
}

// Reset removes all players. Matches must be reset first.
func (r *Registry) Reset(ctx context.Context) error {
	if err := r.store.ResetPlayers(ctx); err != nil {
		return fmt.Errorf("failed to reset players: %w", err)
	}
	log.Info("Player registry cleared")
	return nil
}
