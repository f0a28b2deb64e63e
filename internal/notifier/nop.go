package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tribble/internal/tournament"
)

// Nop is used when no chat integration is configured.
type Nop struct{}

var _ Notifier = Nop{}

func (Nop) SendResultNotification(match tournament.Match, winner, loser tournament.Player, dryRun bool) error {
	log.Debug("Notifications disabled, skipping result", "matchID", match.ID)
	return nil
}

func (Nop) SendPairingsNotification(round tournament.Round, dryRun bool) error {
	log.Debug("Notifications disabled, skipping pairings", "round", round.Number)
	return nil
}

func (Nop) SendStandings(rows []tournament.StandingsRow, dryRun bool) error {
	return nil
}

func (Nop) FormatStandingsResponse(rows []tournament.StandingsRow) (any, error) {
	return rows, nil
}

func (Nop) FormatPairingsResponse(round tournament.Round) (any, error) {
	return round, nil
}
