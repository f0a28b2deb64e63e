package notifier

import (
	"sync"

	"github.com/mauv0809/swiss-tribble/internal/tournament"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendResultNotificationCalls []struct {
		Match  tournament.Match
		Winner tournament.Player
		Loser  tournament.Player
		DryRun bool
	}
	SendPairingsNotificationCalls []struct {
		Round  tournament.Round
		DryRun bool
	}
	SendStandingsCalls [][]tournament.StandingsRow

	// Spies for send functions
	SendResultNotificationFunc   func(match tournament.Match, winner, loser tournament.Player) error
	SendPairingsNotificationFunc func(round tournament.Round) error

	// Spies for format functions
	FormatStandingsResponseFunc func(rows []tournament.StandingsRow) (any, error)
	FormatPairingsResponseFunc  func(round tournament.Round) (any, error)
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendPairingsNotificationCalls = nil
	m.SendStandingsCalls = nil
}

func (m *Mock) SendResultNotification(match tournament.Match, winner, loser tournament.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, struct {
		Match  tournament.Match
		Winner tournament.Player
		Loser  tournament.Player
		DryRun bool
	}{match, winner, loser, dryRun})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, winner, loser)
	}
	return nil
}

func (m *Mock) SendPairingsNotification(round tournament.Round, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPairingsNotificationCalls = append(m.SendPairingsNotificationCalls, struct {
		Round  tournament.Round
		DryRun bool
	}{round, dryRun})
	if m.SendPairingsNotificationFunc != nil {
		return m.SendPairingsNotificationFunc(round)
	}
	return nil
}

func (m *Mock) SendStandings(rows []tournament.StandingsRow, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, rows)
	return nil
}

func (m *Mock) FormatStandingsResponse(rows []tournament.StandingsRow) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatStandingsResponseFunc != nil {
		return m.FormatStandingsResponseFunc(rows)
	}
	return nil, nil
}

func (m *Mock) FormatPairingsResponse(round tournament.Round) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPairingsResponseFunc != nil {
		return m.FormatPairingsResponseFunc(round)
	}
	return nil, nil
}
