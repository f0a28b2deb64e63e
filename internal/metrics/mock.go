package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	playersRegistered  int
	matchesReported    int
	roundsPaired       int
	rematchUnavoidable int
	pairingDurations   []float64
	slackNotifSent     int
	slackNotifFailed   int
	eventsPublished    int
	startupTime        float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		pairingDurations: make([]float64, 0),
	}
}

func (m *Mock) IncPlayersRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersRegistered++
}

func (m *Mock) IncMatchesReported() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesReported++
}

func (m *Mock) IncRoundsPaired() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roundsPaired++
}

func (m *Mock) IncRematchUnavoidable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rematchUnavoidable++
}

func (m *Mock) ObservePairingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pairingDurations = append(m.pairingDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) IncEventsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PlayersRegistered returns the number of times IncPlayersRegistered was called.
func (m *Mock) PlayersRegistered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersRegistered
}

// MatchesReported returns the number of times IncMatchesReported was called.
func (m *Mock) MatchesReported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesReported
}

// RoundsPaired returns the number of times IncRoundsPaired was called.
func (m *Mock) RoundsPaired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roundsPaired
}

// RematchUnavoidable returns the number of times IncRematchUnavoidable was called.
func (m *Mock) RematchUnavoidable() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rematchUnavoidable
}

// PairingDurations returns every duration passed to ObservePairingDuration.
func (m *Mock) PairingDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.pairingDurations...)
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// EventsPublished returns the number of times IncEventsPublished was called.
func (m *Mock) EventsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
