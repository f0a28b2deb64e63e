package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tribble/internal/notifier"
	"github.com/mauv0809/swiss-tribble/internal/processor"
	"github.com/mauv0809/swiss-tribble/internal/tournament"
	"github.com/slack-go/slack"
)

func StandingsCommandHandler(service tournament.Service, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		log.Info("Received standings command", "user", cmd.UserName, "channel", cmd.ChannelName)

		rows, err := service.Standings(r.Context())
		if err != nil {
			writeError(w, err, "Failed to compute standings")
			return
		}

		msg, err := notifier.FormatStandingsResponse(rows)
		if err != nil {
			http.Error(w, "Failed to format standings", http.StatusInternalServerError)
			log.Error("Failed to format standings", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// PairingsCommandHandler previews the next round in Slack without announcing it.
func PairingsCommandHandler(proc *processor.Processor, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		log.Info("Received pairings command", "user", cmd.UserName, "channel", cmd.ChannelName)

		round, err := proc.PairNextRound(r.Context(), false, IsDryRunFromContext(r))
		if err != nil {
			if statusFor(err) == http.StatusInternalServerError {
				writeError(w, err, "Failed to compute pairings")
				return
			}
			// Slack only renders 200 responses, so domain errors become the reply text.
			respondWithSlackMsg(w, slack.NewBlockMessage(
				slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", err.Error(), false, false), nil, nil),
			))
			return
		}

		msg, err := notifier.FormatPairingsResponse(round)
		if err != nil {
			http.Error(w, "Failed to format pairings", http.StatusInternalServerError)
			log.Error("Failed to format pairings", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}
