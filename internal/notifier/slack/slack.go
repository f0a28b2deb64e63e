package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tribble/internal/metrics"
	"github.com/mauv0809/swiss-tribble/internal/notifier"
	"github.com/mauv0809/swiss-tribble/internal/tournament"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendResultNotification(match tournament.Match, winner, loser tournament.Player, dryRun bool) error {
	msg := s.formatResultNotification(match, winner, loser)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPairingsNotification(round tournament.Round, dryRun bool) error {
	msg := s.formatPairings(round)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendStandings(rows []tournament.StandingsRow, dryRun bool) error {
	msg := s.formatStandings(rows)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatStandingsResponse formats the standings for a slash command response.
func (s *Notifier) FormatStandingsResponse(rows []tournament.StandingsRow) (any, error) {
	return s.formatStandings(rows), nil
}

// FormatPairingsResponse formats a round's pairings for a slash command response.
func (s *Notifier) FormatPairingsResponse(round tournament.Round) (any, error) {
	return s.formatPairings(round), nil
}

func (s *Notifier) formatResultNotification(match tournament.Match, winner, loser tournament.Player) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("♟️ Round %d result ♟️", match.Round), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	resultText := fmt.Sprintf("*%s* beat %s", winner.Name, loser.Name)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", resultText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPairings creates the Slack message announcing a round, one line per board.
func (s *Notifier) formatPairings(round tournament.Round) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("♟️ Round %d pairings ♟️", round.Number), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(round.Pairings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players registered yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, len(round.Pairings))
	for i, p := range round.Pairings {
		lines = append(lines, fmt.Sprintf("Board %d: %s vs %s", i+1, p.Name1, p.Name2))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	if round.RematchUnavoidable {
		rematches := make([]string, 0, len(round.Rematches))
		for _, p := range round.Rematches {
			rematches = append(rematches, fmt.Sprintf("%s vs %s", p.Name1, p.Name2))
		}
		warning := "⚠️ Rematch could not be avoided: " + strings.Join(rematches, ", ")
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", warning, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatStandings creates a Slack message to display the current standings.
func (s *Notifier) formatStandings(rows []tournament.StandingsRow) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Standings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players registered yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, row := range rows {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Wins: %d | Losses: %d | Played: %d",
			rank,
			medal,
			row.Name,
			row.Wins,
			row.Losses(),
			row.Matches,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
