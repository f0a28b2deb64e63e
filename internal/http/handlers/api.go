package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mauv0809/swiss-tribble/internal/processor"
	"github.com/mauv0809/swiss-tribble/internal/tournament"
)

type registerRequest struct {
	Name string `json:"name"`
}

type reportRequest struct {
	WinnerID int64 `json:"winner_id"`
	LoserID  int64 `json:"loser_id"`
}

func ListPlayersHandler(service tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := service.Players(r.Context())
		if err != nil {
			writeError(w, err, "Failed to get players")
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func RegisterPlayerHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		player, err := proc.RegisterPlayer(r.Context(), req.Name)
		if err != nil {
			writeError(w, err, "Failed to register player")
			return
		}
		writeJSON(w, http.StatusCreated, player)
	}
}

func ListMatchesHandler(service tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := service.Matches(r.Context())
		if err != nil {
			writeError(w, err, "Failed to get matches")
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func ReportMatchHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		match, err := proc.ReportResult(r.Context(), req.WinnerID, req.LoserID, IsDryRunFromContext(r))
		if err != nil {
			writeError(w, err, "Failed to report match")
			return
		}
		writeJSON(w, http.StatusCreated, match)
	}
}

func StandingsHandler(service tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.Standings(r.Context())
		if err != nil {
			writeError(w, err, "Failed to compute standings")
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// PairingsHandler computes the next round. With announce=true the round is
// also posted and published.
func PairingsHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		announce := r.URL.Query().Get("announce") == "true"
		round, err := proc.PairNextRound(r.Context(), announce, IsDryRunFromContext(r))
		if err != nil {
			writeError(w, err, "Failed to compute pairings")
			return
		}
		writeJSON(w, http.StatusOK, round)
	}
}
