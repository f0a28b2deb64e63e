package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tribble/internal/metrics"
	"github.com/mauv0809/swiss-tribble/internal/pubsub"
	"github.com/mauv0809/swiss-tribble/internal/tournament"
)

// New creates a new Processor.
func New(service tournament.Service, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		service:  service,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// RegisterPlayer adds a player to the tournament.
func (p *Processor) RegisterPlayer(ctx context.Context, name string) (tournament.Player, error) {
	player, err := p.service.RegisterPlayer(ctx, name)
	if err != nil {
		return tournament.Player{}, err
	}
	p.metrics.IncPlayersRegistered()
	return player, nil
}

// ReportResult records a finished match, announces it and publishes a
// match-reported event. Announcement and publishing failures are logged and
// never undo the recorded result. dryRun only suppresses the outward effects.
func (p *Processor) ReportResult(ctx context.Context, winnerID, loserID int64, dryRun bool) (tournament.Match, error) {
	match, err := p.service.ReportMatch(ctx, winnerID, loserID)
	if err != nil {
		return tournament.Match{}, err
	}
	p.metrics.IncMatchesReported()

	winner, err := p.service.Player(ctx, winnerID)
	if err != nil {
		log.Error("Failed to look up winner after recording match", "error", err, "matchID", match.ID)
		return match, nil
	}
	loser, err := p.service.Player(ctx, loserID)
	if err != nil {
		log.Error("Failed to look up loser after recording match", "error", err, "matchID", match.ID)
		return match, nil
	}

	if err := p.notifier.SendResultNotification(match, winner, loser, dryRun); err != nil {
		log.Error("Failed to announce result", "error", err, "matchID", match.ID)
	}
	p.publish(ctx, pubsub.EventMatchReported, MatchReportedEvent{Match: match, Winner: winner, Loser: loser}, dryRun)
	return match, nil
}

// PairNextRound computes the pairings for the next round. When announce is set
// the pairings are posted and a round-paired event is published.
func (p *Processor) PairNextRound(ctx context.Context, announce, dryRun bool) (tournament.Round, error) {
	startTime := time.Now()
	round, err := p.service.NextRoundPairings(ctx)
	p.metrics.ObservePairingDuration(time.Since(startTime).Seconds())
	if err != nil {
		return tournament.Round{}, err
	}

	p.metrics.IncRoundsPaired()
	if round.RematchUnavoidable {
		p.metrics.IncRematchUnavoidable()
	}

	if !announce {
		return round, nil
	}
	log.Info("Announcing round", "round", round.Number, "pairings", len(round.Pairings))
	if err := p.notifier.SendPairingsNotification(round, dryRun); err != nil {
		log.Error("Failed to announce pairings", "error", err, "round", round.Number)
	}
	p.publish(ctx, pubsub.EventRoundPaired, RoundPairedEvent{Round: round}, dryRun)
	return round, nil
}

// HandleMatchReported consumes a match-reported event by posting the
// refreshed standings.
func (p *Processor) HandleMatchReported(ctx context.Context, event MatchReportedEvent, dryRun bool) error {
	log.Debug("Handling match-reported event", "matchID", event.Match.ID, "winner", event.Winner.Name)
	rows, err := p.service.Standings(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute standings: %w", err)
	}
	return p.notifier.SendStandings(rows, dryRun)
}

func (p *Processor) publish(ctx context.Context, event pubsub.EventType, data any, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would publish event", "type", event)
		return
	}
	if err := p.pubsub.SendMessage(ctx, event, data); err != nil {
		log.Error("Failed to publish event", "error", err, "type", event)
		return
	}
	p.metrics.IncEventsPublished()
}
