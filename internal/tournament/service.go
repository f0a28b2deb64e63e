package tournament

import (
	"context"
)

type service struct {
	registry   *Registry
	ledger     *Ledger
	calculator *Calculator
	engine     *Engine
}

var _ Service = (*service)(nil)

// NewService wires the registry, ledger, standings calculator and pairing
// engine around one store.
func NewService(store Store) Service {
	return &service{
		registry:   NewRegistry(store),
		ledger:     NewLedger(store),
		calculator: NewCalculator(store),
		engine:     NewEngine(store),
	}
}

func (s *service) CountPlayers(ctx context.Context) (int, error) {
	return s.registry.Count(ctx)
}

func (s *service) RegisterPlayer(ctx context.Context, name string) (Player, error) {
	return s.registry.Register(ctx, name)
}

func (s *service) Player(ctx context.Context, id int64) (Player, error) {
	return s.registry.Get(ctx, id)
}

func (s *service) Players(ctx context.Context) ([]Player, error) {
	return s.registry.List(ctx)
}

func (s *service) ReportMatch(ctx context.Context, winnerID, loserID int64) (Match, error) {
	return s.ledger.Record(ctx, winnerID, loserID)
}

func (s *service) Matches(ctx context.Context) ([]Match, error) {
	return s.ledger.All(ctx)
}

func (s *service) Standings(ctx context.Context) ([]StandingsRow, error) {
	return s.calculator.Standings(ctx)
}

func (s *service) NextRoundPairings(ctx context.Context) (Round, error) {
	return s.engine.NextRound(ctx)
}

func (s *service) ResetMatches(ctx context.Context) error {
	return s.ledger.Reset(ctx)
}

// ResetTournament clears the ledger and then the registry, so no match is
// ever left pointing at a removed player.
func (s *service) ResetTournament(ctx context.Context) error {
	if err := s.ledger.Reset(ctx); err != nil {
		return err
	}
	return s.registry.Reset(ctx)
}
