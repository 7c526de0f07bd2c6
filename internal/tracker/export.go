package tracker

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/volleystat/internal/report"
)

// writeOrder puts the summary last so its counts follow the data tabs.
var writeOrder = []string{
	report.SheetTeams,
	report.SheetPlayers,
	report.SheetMatches,
	report.SheetStats,
	report.SheetSessions,
	report.SheetSummary,
}

func (t *Tracker) exportFailed(err error) error {
	t.metrics.IncSheetExportFailed()
	return err
}

// write ensures the tab exists and writes rows starting at its first cell.
func (t *Tracker) write(ctx context.Context, spreadsheetID, tab string, rows [][]any) (int, error) {
	if _, err := t.sink.EnsureSheets(ctx, spreadsheetID, []string{tab}); err != nil {
		return 0, t.exportFailed(fmt.Errorf("failed to prepare sheet %s: %w", tab, err))
	}
	cells, err := t.sink.WriteRows(ctx, spreadsheetID, tab+"!A1", rows)
	if err != nil {
		return 0, t.exportFailed(fmt.Errorf("failed to export %s: %w", tab, err))
	}
	t.metrics.AddSheetCellsWritten(cells)
	return cells, nil
}

// ExportPlayerReport writes a player report to the tab Player_<id>.
func (t *Tracker) ExportPlayerReport(ctx context.Context, spreadsheetID string, playerID int64) (int, error) {
	if t.sink == nil {
		return 0, ErrNoSink
	}
	r, err := t.PlayerReport(playerID)
	if err != nil {
		return 0, err
	}
	return t.write(ctx, spreadsheetID, fmt.Sprintf("Player_%d", playerID), r.Rows())
}

// ExportTeamReport writes a team report to the tab Team_<id>.
func (t *Tracker) ExportTeamReport(ctx context.Context, spreadsheetID string, teamID int64) (int, error) {
	if t.sink == nil {
		return 0, ErrNoSink
	}
	r, err := t.TeamReport(teamID)
	if err != nil {
		return 0, err
	}
	return t.write(ctx, spreadsheetID, fmt.Sprintf("Team_%d", teamID), r.Rows())
}

// ExportAll writes every table plus a summary, creating missing tabs first.
// It returns the total number of cells updated.
func (t *Tracker) ExportAll(ctx context.Context, spreadsheetID string) (int, error) {
	if t.sink == nil {
		return 0, ErrNoSink
	}
	snapshot, err := t.Snapshot()
	if err != nil {
		return 0, err
	}

	created, err := t.sink.EnsureSheets(ctx, spreadsheetID, report.SheetTitles)
	if err != nil {
		return 0, t.exportFailed(fmt.Errorf("failed to prepare sheets: %w", err))
	}
	if created > 0 {
		log.Info("Created missing sheets", "count", created, "spreadsheet", spreadsheetID)
	}

	runID := uuid.NewString()
	sheets := snapshot.Sheets(t.now(), runID)
	total := 0
	for _, tab := range writeOrder {
		rows, ok := sheets[tab]
		if !ok {
			continue
		}
		cells, err := t.sink.WriteRows(ctx, spreadsheetID, tab+"!A1", rows)
		if err != nil {
			return total, t.exportFailed(fmt.Errorf("failed to export %s: %w", tab, err))
		}
		t.metrics.AddSheetCellsWritten(cells)
		total += cells
		log.Info("Exported sheet", "tab", tab, "cells", cells, "run", runID)
	}
	return total, nil
}
