package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tribble/internal/processor"
	"github.com/mauv0809/swiss-tribble/internal/pubsub"
)

// MatchReportedHandler receives match-reported events from a Pub/Sub push
// subscription and posts the refreshed standings.
func MatchReportedHandler(proc *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received match reported message", "body", string(bodyBytes))

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var event processor.MatchReportedEvent
		if err := pubsubClient.ProcessMessage(rawData, &event); err != nil {
			// A malformed message is acknowledged so Pub/Sub stops redelivering it.
			log.Error("Dropping undecodable match reported message", "error", err)
			w.Write([]byte("OK"))
			return
		}
		if err := proc.HandleMatchReported(r.Context(), event, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to handle match reported event", "error", err)
			http.Error(w, "Failed to post standings", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
