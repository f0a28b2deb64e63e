package processor

import (
	"github.com/mauv0809/swiss-tribble/internal/metrics"
	"github.com/mauv0809/swiss-tribble/internal/pubsub"
	"github.com/mauv0809/swiss-tribble/internal/tournament"
)

// Processor wraps the tournament service with the side effects of running a
// tournament: announcements, published events and metrics.
type Processor struct {
	service  tournament.Service
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}

// MatchReportedEvent is the payload of the match-reported event.
type MatchReportedEvent struct {
	Match  tournament.Match  `msgpack:"match"`
	Winner tournament.Player `msgpack:"winner"`
	Loser  tournament.Player `msgpack:"loser"`
}

// RoundPairedEvent is the payload of the round-paired event.
type RoundPairedEvent struct {
	Round tournament.Round `msgpack:"round"`
}
