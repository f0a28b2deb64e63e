package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tribble/internal/tournament"
)

func HealthCheckHandler(service tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		if _, err := service.CountPlayers(r.Context()); err != nil {
			log.Error("Health check failed to reach the store", "error", err)
			http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ResetHandler clears results (scope=matches, the default) or the whole
// tournament (scope=all).
func ResetHandler(service tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope := r.URL.Query().Get("scope")
		if scope == "" {
			scope = "matches"
		}
		if scope != "matches" && scope != "all" {
			http.Error(w, "scope must be 'matches' or 'all'", http.StatusBadRequest)
			return
		}
		if IsDryRunFromContext(r) {
			log.Info("[Dry Run] Would reset tournament", "scope", scope)
			fmt.Fprintf(w, "Would reset %s.", scope)
			return
		}

		log.Info("Received request to reset tournament", "scope", scope)
		var err error
		if scope == "all" {
			err = service.ResetTournament(r.Context())
		} else {
			err = service.ResetMatches(r.Context())
		}
		if err != nil {
			writeError(w, err, "Failed to reset tournament")
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Reset %s!", scope)
		log.Info("Tournament reset", "scope", scope)
	}
}
