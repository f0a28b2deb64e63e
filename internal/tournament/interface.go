package tournament

import "context"

// Store is the persistence boundary of the tournament. Any durable or
// in-memory mapping can back it as long as each write is all-or-nothing.
type Store interface {
	InsertPlayer(ctx context.Context, name string) (Player, error)
	// InsertMatch fails with *InvalidMatchError or *ReferentialError.
	InsertMatch(ctx context.Context, winnerID, loserID int64) (Match, error)
	// ListPlayers returns players in registration order.
	ListPlayers(ctx context.Context) ([]Player, error)
	// ListMatches returns matches in the order they were reported.
	ListMatches(ctx context.Context) ([]Match, error)
	// Snapshot returns players and matches read from one consistent view.
	Snapshot(ctx context.Context) ([]Player, []Match, error)
	ResetPlayers(ctx context.Context) error
	ResetMatches(ctx context.Context) error
}

// Service is the surface exposed to the HTTP server, the CLI and the processor.
type Service interface {
	CountPlayers(ctx context.Context) (int, error)
	RegisterPlayer(ctx context.Context, name string) (Player, error)
	Player(ctx context.Context, id int64) (Player, error)
	Players(ctx context.Context) ([]Player, error)
	ReportMatch(ctx context.Context, winnerID, loserID int64) (Match, error)
	Matches(ctx context.Context) ([]Match, error)
	Standings(ctx context.Context) ([]StandingsRow, error)
	NextRoundPairings(ctx context.Context) (Round, error)
	ResetMatches(ctx context.Context) error
	ResetTournament(ctx context.Context) error
}
