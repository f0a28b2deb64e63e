package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/swiss-tribble/internal/database"
	"github.com/mauv0809/swiss-tribble/internal/tournament"
	"github.com/spf13/cobra"
)

var (
	numPlayers int
	numRounds  int
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Seed the tournament database with players and random results",
	Long: heredoc.Doc(`
		Registers a batch of players and plays Swiss rounds with random winners
		directly against the configured database.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().IntVar(&numPlayers, "players", 8, "Number of players to register; together with existing players the total must be even")
	rootCmd.Flags().IntVar(&numRounds, "rounds", 3, "Number of rounds to play")
	rootCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Seed for the random winners")
}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	value, ok := os.LookupEnv("DB_NAME")
	if !ok {
		log.Fatalf("Error: Required environment variable %s is not set.", "DB_NAME")
	}
	config["DB_NAME"] = value
	for _, key := range []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		config[key] = os.Getenv(key)
	}
	return config
}

func run(ctx context.Context) error {
	if numPlayers < 0 || numRounds < 0 {
		return fmt.Errorf("--players and --rounds must not be negative")
	}

	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer teardown()
	service := tournament.NewService(tournament.NewStore(db))

	startTime := time.Now()
	if err := seedTournament(ctx, service, numPlayers, numRounds, rand.New(rand.NewSource(seed))); err != nil {
		return err
	}

	rows, err := service.Standings(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute standings: %w", err)
	}
	for i, row := range rows {
		log.Info("Standing", "rank", i+1, "name", row.Name, "wins", row.Wins, "matches", row.Matches)
	}
	log.Info("Seeding finished.", "duration", time.Since(startTime))
	return nil
}

// seedTournament registers players and plays rounds with random winners.
// The tournament must end up with an even number of players, counting those
// already registered; nothing is written otherwise.
func seedTournament(ctx context.Context, service tournament.Service, players, rounds int, rng *rand.Rand) error {
	existing, err := service.CountPlayers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count players: %w", err)
	}
	if (existing+players)%2 != 0 {
		return fmt.Errorf("tournament already has %d players, adding %d would leave an odd count", existing, players)
	}

	// The tag keeps seeded players recognisable when seeding an existing tournament.
	tag := uuid.NewString()[:8]
	for i := 1; i <= players; i++ {
		if _, err := service.RegisterPlayer(ctx, fmt.Sprintf("Seeder %s #%d", tag, i)); err != nil {
			return fmt.Errorf("failed to register player %d: %w", i, err)
		}
	}
	log.Info("Registered players", "count", players, "total", existing+players, "tag", tag)

	for i := 0; i < rounds; i++ {
		round, err := service.NextRoundPairings(ctx)
		if err != nil {
			return fmt.Errorf("failed to pair round: %w", err)
		}
		if round.RematchUnavoidable {
			log.Warn("Round repeats earlier pairings", "round", round.Number, "rematches", len(round.Rematches))
		}
		for _, p := range round.Pairings {
			winner, loser := p.Player1ID, p.Player2ID
			if rng.Intn(2) == 0 {
				winner, loser = loser, winner
			}
			if _, err := service.ReportMatch(ctx, winner, loser); err != nil {
				return fmt.Errorf("failed to report match in round %d: %w", round.Number, err)
			}
		}
		log.Info("Played round", "round", round.Number, "matches", len(round.Pairings))
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error("Seeder failed", "error", err)
		os.Exit(1)
	}
}
