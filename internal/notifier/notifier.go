package notifier

import (
	"github.com/mauv0809/swiss-tribble/internal/tournament"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For reported results
	SendResultNotification(match tournament.Match, winner, loser tournament.Player, dryRun bool) error
	// For a freshly paired round
	SendPairingsNotification(round tournament.Round, dryRun bool) error
	SendStandings(rows []tournament.StandingsRow, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(rows []tournament.StandingsRow) (any, error)
	FormatPairingsResponse(round tournament.Round) (any, error)
}
