package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	server "github.com/mauv0809/volleystat/internal/http"
	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/mauv0809/volleystat/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	reportCmd.AddCommand(reportPlayerCmd, reportTeamCmd)
	recommendCmd.AddCommand(recommendPlayerCmd, recommendTeamCmd)
	exportCmd.AddCommand(exportPlayerCmd, exportTeamCmd, exportAllCmd)
	rootCmd.AddCommand(reportCmd, recommendCmd, exportCmd, resetCmd, metricsCmd)

	exportCmd.PersistentFlags().String("spreadsheet", "", "spreadsheet id (defaults to SPREADSHEET_ID)")
	resetCmd.Flags().Bool("yes", false, "confirm deleting all recorded data")
	metricsCmd.Flags().String("listen", "", "serve /metrics on this address, e.g. :9090")
	metricsCmd.Flags().Bool("reset", false, "clear the persisted counters")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show performance reports",
}

var reportPlayerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show a player's metrics, recent matches and advice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "player")
		if err != nil {
			return err
		}
		r, err := current.tracker.PlayerReport(id)
		if err != nil {
			return err
		}
		report.RenderPlayerReport(cmd.OutOrStdout(), r)
		return nil
	},
}

var reportTeamCmd = &cobra.Command{
	Use:   "team <id>",
	Short: "Show a team's metrics, recent matches, top performers and advice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "team")
		if err != nil {
			return err
		}
		r, err := current.tracker.TeamReport(id)
		if err != nil {
			return err
		}
		report.RenderTeamReport(cmd.OutOrStdout(), r)
		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show training recommendations",
}

var recommendPlayerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Recommend drills for a player's weakest area",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "player")
		if err != nil {
			return err
		}
		r, err := current.tracker.PlayerRecommendation(id)
		if err != nil {
			return err
		}
		report.RenderPlayerRecommendation(cmd.OutOrStdout(), r)
		return nil
	},
}

var recommendTeamCmd = &cobra.Command{
	Use:   "team <id>",
	Short: "Recommend team training from per-player averages and close-set results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "team")
		if err != nil {
			return err
		}
		r, err := current.tracker.TeamRecommendation(id)
		if err != nil {
			return err
		}
		report.RenderTeamRecommendation(cmd.OutOrStdout(), r)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reports to Google Sheets",
}

func spreadsheetID(cmd *cobra.Command) (string, error) {
	id, _ := cmd.Flags().GetString("spreadsheet")
	if id == "" {
		id = current.cfg.Sheets.SpreadsheetID
	}
	if id == "" {
		return "", errors.New("no spreadsheet id: pass --spreadsheet or set SPREADSHEET_ID")
	}
	return id, nil
}

func exportOne(cmd *cobra.Command, args []string, what string, export func(context.Context, string, int64) (int, error)) error {
	id, err := parseID(args[0], what)
	if err != nil {
		return err
	}
	sheet, err := spreadsheetID(cmd)
	if err != nil {
		return err
	}
	cells, err := export(cmd.Context(), sheet, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d cells updated\n", cells)
	return nil
}

var exportPlayerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Export a player report to the tab Player_<id>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportOne(cmd, args, "player", current.tracker.ExportPlayerReport)
	},
}

var exportTeamCmd = &cobra.Command{
	Use:   "team <id>",
	Short: "Export a team report to the tab Team_<id>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportOne(cmd, args, "team", current.tracker.ExportTeamReport)
	},
}

var exportAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Export every table plus a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, err := spreadsheetID(cmd)
		if err != nil {
			return err
		}
		cells, err := current.tracker.ExportAll(cmd.Context(), sheet)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Comprehensive report exported: %d cells updated\n", cells)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("refusing to delete data without --yes")
		}
		if err := current.tracker.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show persisted counters or serve them for Prometheus",
	RunE: func(cmd *cobra.Command, args []string) error {
		if reset, _ := cmd.Flags().GetBool("reset"); reset {
			if err := current.counters.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Counters cleared")
			return nil
		}

		counters, err := current.counters.GetAll()
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			report.RenderCounters(cmd.OutOrStdout(), counters)
			return nil
		}
		current.service.LoadEvents(counters)
		return serve(cmd.Context(), addr)
	},
}

// serve exposes /metrics and /health, plus /api/inngest when Inngest is
// configured, until interrupted.
func serve(ctx context.Context, addr string) error {
	var inngestHandler http.Handler
	if current.inngest != nil {
		inngestHandler = current.inngest.Serve()
	}
	s := server.NewServer(current.db, metrics.NewMetricsHandler(current.registry), inngestHandler)
	srv := &http.Server{Addr: addr, Handler: s}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Metrics server started", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
			return err
		}
		log.Info("Server gracefully stopped")
	}
	return nil
}
