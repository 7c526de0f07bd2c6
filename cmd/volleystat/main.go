package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/volleystat/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	jsonLogs   bool

	current *app
	started time.Time
)

var rootCmd = &cobra.Command{
	Use:   "volleystat",
	Short: "Record and analyse volleyball teams, players, matches and training",
	Long: `A command-line tool for recording volleyball teams, players, matches,
per-player statistics and training sessions, and for producing performance
reports, training recommendations and spreadsheet exports.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current == nil {
			return
		}
		current.metrics.ObserveCommandDuration(time.Since(started).Seconds())
		current.close()
		current = nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "write logs as JSON")
}

// setup loads configuration and wires the application before every command.
func setup(cmd *cobra.Command, args []string) error {
	started = time.Now()
	if jsonLogs {
		log.SetFormatter(log.JSONFormatter)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	current = a
	startup := time.Since(started)
	a.metrics.SetStartupTime(startup.Seconds())
	log.Debug("Startup time recorded", "duration_ms", startup.Milliseconds())
	return nil
}

func Execute() {
	err := rootCmd.Execute()
	if current != nil {
		current.close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
