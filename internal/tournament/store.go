package tournament

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewStore creates a Store backed by the given database handle.
func NewStore(db *sql.DB) Store {
	return &store{
		db:  db,
		now: time.Now,
	}
}

// withTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back on any error or panic.
func (s *store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("Failed to roll back transaction", "error", rbErr)
			}
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("failed to commit transaction: %w", err)
		}
	}()
	return fn(tx)
}

func (s *store) InsertPlayer(ctx context.Context, name string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := Player{Name: name, RegisteredAt: s.now().Unix()}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "INSERT INTO players (name, registered_at) VALUES (?, ?)", player.Name, player.RegisteredAt)
		if err != nil {
			return err
		}
		player.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return Player{}, err
	}
	log.Debug("Inserted player", "playerID", player.ID, "name", player.Name)
	return player, nil
}

func (s *store) InsertMatch(ctx context.Context, winnerID, loserID int64) (Match, error) {
	if winnerID == loserID {
		return Match{}, &InvalidMatchError{PlayerID: winnerID}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	match := Match{WinnerID: winnerID, LoserID: loserID, CreatedAt: s.now().Unix()}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, id := range []int64{winnerID, loserID} {
			known, err := playerExists(ctx, tx, id)
			if err != nil {
				return err
			}
			if !known {
				return &ReferentialError{PlayerID: id}
			}
		}

		var players, matches int
		err := tx.QueryRowContext(ctx, "SELECT (SELECT COUNT(*) FROM players), (SELECT COUNT(*) FROM matches)").Scan(&players, &matches)
		if err != nil {
			return err
		}
		match.Round = roundNumber(players, matches)

		res, err := tx.ExecContext(ctx,
			"INSERT INTO matches (winner_id, loser_id, round, created_at) VALUES (?, ?, ?, ?)",
			match.WinnerID, match.LoserID, match.Round, match.CreatedAt)
		if err != nil {
			return err
		}
		match.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return Match{}, err
	}
	log.Debug("Inserted match", "matchID", match.ID, "winnerID", winnerID, "loserID", loserID, "round", match.Round)
	return match, nil
}

func playerExists(ctx context.Context, q queryer, id int64) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

func (s *store) ListPlayers(ctx context.Context) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listPlayers(ctx, s.db)
}

func (s *store) ListMatches(ctx context.Context) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listMatches(ctx, s.db)
}

func (s *store) Snapshot(ctx context.Context) ([]Player, []Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		players []Player
		matches []Match
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if players, err = listPlayers(ctx, tx); err != nil {
			return err
		}
		matches, err = listMatches(ctx, tx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return players, matches, nil
}

func listPlayers(ctx context.Context, q queryer) ([]Player, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, name, registered_at FROM players ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]Player, 0)
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.RegisteredAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func listMatches(ctx context.Context, q queryer) ([]Match, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, winner_id, loser_id, round, created_at FROM matches ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]Match, 0)
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.WinnerID, &m.LoserID, &m.Round, &m.CreatedAt); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// ResetPlayers removes every player. It fails while matches still reference them.
func (s *store) ResetPlayers(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM players")
		return err
	})
}

func (s *store) ResetMatches(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM matches")
		return err
	})
}
