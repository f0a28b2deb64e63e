package tournament

import (
	"context"
	"fmt"
	"sync"
)

// MockStore is an in-memory Store for testing. Without overrides it behaves
// like the SQL store; any ...Func field replaces the matching method.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	players []Player
	matches []Match
	nextID  int64

	// Spies for method calls
	InsertPlayerFunc func(name string) (Player, error)
	InsertMatchFunc  func(winnerID, loserID int64) (Match, error)
	ListPlayersFunc  func() ([]Player, error)
	ListMatchesFunc  func() ([]Match, error)
	SnapshotFunc     func() ([]Player, []Match, error)
	ResetPlayersFunc func() error
	ResetMatchesFunc func() error

	// Call records
	InsertPlayerCalls []string
	InsertMatchCalls  []struct {
		WinnerID int64
		LoserID  int64
	}
	ResetPlayersCalls int
	ResetMatchesCalls int
}

var _ Store = (*MockStore)(nil)

// NewMock creates a new, empty mock store.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) InsertPlayer(ctx context.Context, name string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertPlayerCalls = append(m.InsertPlayerCalls, name)
	if m.InsertPlayerFunc != nil {
		return m.InsertPlayerFunc(name)
	}
	m.nextID++
	p := Player{ID: m.nextID, Name: name}
	m.players = append(m.players, p)
	return p, nil
}

func (m *MockStore) InsertMatch(ctx context.Context, winnerID, loserID int64) (Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertMatchCalls = append(m.InsertMatchCalls, struct {
		WinnerID int64
		LoserID  int64
	}{winnerID, loserID})
	if m.InsertMatchFunc != nil {
		return m.InsertMatchFunc(winnerID, loserID)
	}
	if winnerID == loserID {
		return Match{}, &InvalidMatchError{PlayerID: winnerID}
	}
	for _, id := range []int64{winnerID, loserID} {
		if !m.knownLocked(id) {
			return Match{}, &ReferentialError{PlayerID: id}
		}
	}
	match := Match{
		ID:       int64(len(m.matches) + 1),
		WinnerID: winnerID,
		LoserID:  loserID,
		Round:    roundNumber(len(m.players), len(m.matches)),
	}
	m.matches = append(m.matches, match)
	return match, nil
}

func (m *MockStore) knownLocked(id int64) bool {
	for _, p := range m.players {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (m *MockStore) ListPlayers(ctx context.Context) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return append([]Player(nil), m.players...), nil
}

func (m *MockStore) ListMatches(ctx context.Context) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc()
	}
	return append([]Match(nil), m.matches...), nil
}

func (m *MockStore) Snapshot(ctx context.Context) ([]Player, []Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc()
	}
	return append([]Player(nil), m.players...), append([]Match(nil), m.matches...), nil
}

func (m *MockStore) ResetPlayers(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetPlayersCalls++
	if m.ResetPlayersFunc != nil {
		return m.ResetPlayersFunc()
	}
	if len(m.matches) > 0 {
		return fmt.Errorf("cannot remove players: %d matches still reference them", len(m.matches))
	}
	m.players = nil
	return nil
}

func (m *MockStore) ResetMatches(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetMatchesCalls++
	if m.ResetMatchesFunc != nil {
		return m.ResetMatchesFunc()
	}
	m.matches = nil
	return nil
}
