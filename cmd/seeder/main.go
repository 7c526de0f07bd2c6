package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/volleystat/internal/club"
	"github.com/mauv0809/volleystat/internal/config"
	"github.com/mauv0809/volleystat/internal/database"
	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/mauv0809/volleystat/internal/notifier"
	"github.com/mauv0809/volleystat/internal/tracker"
	"github.com/mauv0809/volleystat/internal/training"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type seedPlayer struct {
	name, position string
}

type seedMatch struct {
	opponent          string
	date              string
	setsWon, setsLost int
	// attacks, kills, errors, blocks, digs, aces per home player, in roster order
	lines [][6]int
}

type seedSession struct {
	category string
	date     string
	duration int
}

var (
	homeTeam = "McMaster Marauders"
	awayTeam = "Western Mustangs"

	homeRoster = []seedPlayer{
		{"Michael Johnson", "Outside Hitter"},
		{"Emma Davis", "Setter"},
		{"Brandon Chen", "Middle Blocker"},
		{"Sophia Martinez", "Libero"},
		{"Jacob Wilson", "Opposite"},
		{"Olivia Brown", "Middle Blocker"},
	}
	awayRoster = []seedPlayer{
		{"Ethan Taylor", "Outside Hitter"},
		{"Ava Roberts", "Setter"},
		{"Liam Garcia", "Middle Blocker"},
		{"Isabella Kim", "Libero"},
		{"Noah Lewis", "Opposite"},
	}

	homeMatches = []seedMatch{
		{"Western Mustangs", "2025-03-01", 3, 1, [][6]int{
			{35, 15, 5, 2, 8, 3}, {5, 2, 1, 0, 10, 2}, {20, 8, 2, 5, 3, 0},
			{0, 0, 0, 0, 18, 0}, {28, 12, 4, 1, 5, 2}, {18, 7, 3, 4, 2, 1},
		}},
		{"Queen's Gaels", "2025-03-08", 3, 2, [][6]int{
			{40, 18, 7, 1, 10, 2}, {6, 3, 2, 0, 12, 3}, {22, 9, 3, 4, 2, 0},
			{0, 0, 0, 0, 22, 0}, {32, 14, 6, 2, 7, 1}, {20, 8, 4, 3, 3, 0},
		}},
		{"Toronto Varsity Blues", "2025-03-15", 1, 3, [][6]int{
			{30, 10, 8, 1, 7, 1}, {4, 1, 2, 0, 8, 1}, {15, 5, 4, 3, 1, 0},
			{0, 0, 0, 0, 15, 0}, {25, 8, 7, 0, 4, 1}, {12, 4, 5, 2, 1, 0},
		}},
		{"Waterloo Warriors", "2025-03-22", 3, 0, [][6]int{
			{25, 14, 3, 3, 6, 4}, {3, 2, 0, 0, 9, 4}, {18, 10, 1, 6, 2, 0},
			{0, 0, 0, 0, 20, 0}, {22, 13, 2, 2, 5, 3}, {16, 9, 2, 5, 2, 1},
		}},
		{"Guelph Gryphons", "2025-03-29", 2, 3, [][6]int{
			{38, 16, 6, 2, 9, 2}, {5, 1, 2, 0, 11, 2}, {24, 10, 4, 4, 3, 0},
			{0, 0, 0, 0, 24, 0}, {30, 12, 5, 1, 6, 2}, {22, 9, 5, 3, 2, 0},
		}},
	}

	homeSessions = []seedSession{
		{"serving", "2025-03-03", 90},
		{"attacking", "2025-03-05", 120},
		{"blocking", "2025-03-10", 60},
		{"serving", "2025-03-17", 90},
		{"attacking", "2025-03-19", 120},
		{"blocking", "2025-03-24", 60},
	}
)

func mustDate(s string) time.Time {
	d, err := club.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// seed records the sample club through the tracker so every row is validated.
func seed(t *tracker.Tracker) error {
	homeID, err := t.AddTeam(homeTeam)
	if err != nil {
		return err
	}
	awayID, err := t.AddTeam(awayTeam)
	if err != nil {
		return err
	}

	homePlayers := make([]int64, 0, len(homeRoster))
	for _, p := range homeRoster {
		id, err := t.AddPlayer(p.name, p.position, homeID)
		if err != nil {
			return err
		}
		homePlayers = append(homePlayers, id)
	}
	for _, p := range awayRoster {
		if _, err := t.AddPlayer(p.name, p.position, awayID); err != nil {
			return err
		}
	}

	for _, m := range homeMatches {
		matchID, err := t.RecordMatch(homeID, m.opponent, mustDate(m.date), m.setsWon, m.setsLost)
		if err != nil {
			return err
		}
		for i, l := range m.lines {
			_, err := t.RecordPlayerStats(club.PlayerStat{
				PlayerID: homePlayers[i], MatchID: matchID,
				Attacks: l[0], Kills: l[1], Errors: l[2], Blocks: l[3], Digs: l[4], Aces: l[5],
			})
			if err != nil {
				return fmt.Errorf("stats for %s against %s: %w", homeRoster[i].name, m.opponent, err)
			}
		}
	}

	for _, s := range homeSessions {
		session, err := training.New(s.category, mustDate(s.date), homePlayers, s.duration)
		if err != nil {
			return err
		}
		if _, err := t.RecordTrainingSession(homeID, session); err != nil {
			return err
		}
	}
	return nil
}

var configPath string

var rootCmd = &cobra.Command{
	Use:          "seeder",
	Short:        "Reset the database and populate it with the sample club",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func run(cmd *cobra.Command, args []string) error {
	log.Info("Starting database seeder...")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	url := cfg.Database.URL
	if cfg.Database.Driver == database.DriverLibSQL {
		url = cfg.Database.Turso.PrimaryURL
	}
	db, teardown, err := database.InitDB(database.Options{
		Driver:    cfg.Database.Driver,
		Name:      cfg.Database.Name,
		URL:       url,
		AuthToken: cfg.Database.Turso.AuthToken,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer teardown()

	dialect := database.DialectFor(cfg.Database.Driver)
	recorder := metrics.NewRecorder(metrics.NewService(prometheus.NewRegistry()), metrics.New(db, dialect))
	t := tracker.New(club.New(db, dialect), notifier.New(), recorder)

	startTime := time.Now()
	if err := t.Reset(); err != nil {
		return fmt.Errorf("failed to clear existing data: %w", err)
	}
	if err := seed(t); err != nil {
		return fmt.Errorf("failed to seed sample data: %w", err)
	}
	log.Info("Sample data population complete", "duration", time.Since(startTime))
	fmt.Fprintln(cmd.OutOrStdout(), "Sample data population complete")
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
