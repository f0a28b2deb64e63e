package tournament

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Ledger is the append-only record of completed matches.
type Ledger struct {
	store Store
}

// NewLedger creates a Ledger on top of the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Record appends a result. It fails with *InvalidMatchError when winner and
// loser are the same player and with *ReferentialError when either is unknown.
func (l *Ledger) Record(ctx context.Context, winnerID, loserID int64) (Match, error) {
	if winnerID == loserID {
		return Match{}, &InvalidMatchError{PlayerID: winnerID}
	}
	match, err := l.store.InsertMatch(ctx, winnerID, loserID)
	if err != nil {
		return Match{}, fmt.Errorf("failed to record match %d-%d: %w", winnerID, loserID, err)
	}
	log.Info("Recorded match", "matchID", match.ID, "winnerID", winnerID, "loserID", loserID, "round", match.Round)
	return match, nil
}

func (l *Ledger) All(ctx context.Context) ([]Match, error) {
	matches, err := l.store.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// Reset clears the whole match history.
func (l *Ledger) Reset(ctx context.Context) error {
	if err := l.store.ResetMatches(ctx); err != nil {
		return fmt.Errorf("failed to reset matches: %w", err)
	}
	log.Info("Match ledger cleared")
	return nil
}

// History answers whether two players have already met.
type History map[int64]map[int64]struct{}

// NewHistory builds the opponent history of the given matches.
func NewHistory(matches []Match) History {
	h := make(History)
	for _, m := range matches {
		h.add(m.WinnerID, m.LoserID)
		h.add(m.LoserID, m.WinnerID)
	}
	return h
}

func (h History) add(a, b int64) {
	if h[a] == nil {
		h[a] = make(map[int64]struct{})
	}
	h[a][b] = struct{}{}
}

// Played reports whether a and b have met in any recorded match.
func (h History) Played(a, b int64) bool {
	_, ok := h[a][b]
	return ok
}
