package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"calcetto-tracker/internal/datasource"
	"calcetto-tracker/internal/matchfile"
	"calcetto-tracker/internal/roster"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// staticResolver pins every operation to the mock root. The seeder must
// never guess between roots the way the server does; it only ever fills the
// mock one.
type staticResolver struct {
	paths datasource.Paths
}

func (r staticResolver) Resolve() (datasource.Paths, error) {
	return r.paths, nil
}

var seedNames = []string{
	"Alessandro Bianchi", "Marco Rossi", "Luca Ferrari", "Giulio Romano",
	"Davide Colombo", "Matteo Ricci", "Simone Greco", "Andrea Conti",
	"Federico Gallo", "Stefano Fontana",
}

func main() {
	numMatches := flag.Int("matches", 20, "number of mock matches to generate")
	seed := flag.Int64("seed", 42, "rng seed for generated team sheets")
	flag.Parse()

	log.Info("Starting mock data seeder...")

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	mockDir := os.Getenv("CALCETTO_MOCK_DATA_DIR")
	if mockDir == "" {
		mockDir = "./data_mock"
	}

	paths := datasource.NewPaths(datasource.KindMock, mockDir)
	if err := datasource.EnsureLayout(paths); err != nil {
		log.Fatalf("Failed to prepare mock data root: %s", err)
	}

	resolver := staticResolver{paths: paths}
	players := roster.New(resolver)

	for _, name := range seedNames {
		if _, err := players.Add(name); err != nil {
			log.Debug("Skipping roster seed entry", "name", name, "error", err)
		}
	}
	log.Info("Ensured mock roster exists", "players", len(seedNames))

	rng := rand.New(rand.NewSource(*seed))
	matchDate := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

	startTime := time.Now()
	for i := 0; i < *numMatches; i++ {
		names := append([]string(nil), seedNames...)
		rng.Shuffle(len(names), func(a, b int) {
			names[a], names[b] = names[b], names[a]
		})

		rows := make([]matchfile.PlayerRow, 0, 10)
		for j, name := range names {
			team := matchfile.TeamA
			if j >= 5 {
				team = matchfile.TeamB
			}
			rows = append(rows, matchfile.PlayerRow{
				Team:    team,
				Player:  name,
				Goals:   rng.Intn(4),
				Assists: rng.Intn(3),
			})
		}

		if _, err := matchfile.Write(paths.MatchesDir, matchDate, "mock match", rows); err != nil {
			log.Fatalf("Failed to write mock match: %s", err)
		}
		matchDate = matchDate.AddDate(0, 0, 7)
	}

	log.Info("Seeding complete", "matches", *numMatches, "duration", time.Since(startTime))
}
