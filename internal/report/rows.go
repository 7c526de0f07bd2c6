package report

import (
	"fmt"
	"time"

	"github.com/mauv0809/volleystat/internal/club"
)

// FormatDate renders a date for a sink.
func FormatDate(t time.Time) string {
	return club.FormatDate(t)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Rows lays the player report out for a spreadsheet.
func (r PlayerReport) Rows() [][]any {
	rows := [][]any{
		{"PLAYER REPORT", r.Player.Name, r.Player.Position},
		{},
		{"PERFORMANCE METRICS"},
		{"Attacking Efficiency", percent(r.Metrics.AttackingEfficiency)},
		{"Blocking Average", fmt.Sprintf("%.2f blocks per match", r.Metrics.BlockingAverage)},
		{"Total Serving Aces", r.Metrics.ServingAces},
		{},
		{"RECENT MATCH STATISTICS"},
	}
	if len(r.Recent) > 0 {
		rows = append(rows, []any{"Date", "Opponent", "Attacks", "Kills", "Errors", "Blocks", "Digs", "Aces"})
		for _, s := range r.Recent {
			rows = append(rows, []any{FormatDate(s.MatchDate), s.Opponent, s.Attacks, s.Kills, s.Errors, s.Blocks, s.Digs, s.Aces})
		}
	}
	rows = append(rows, []any{}, []any{"TRAINING RECOMMENDATIONS"})
	for _, rec := range r.Recommendations {
		rows = append(rows, []any{rec})
	}
	return rows
}

// Rows lays the team report out for a spreadsheet.
func (r TeamReport) Rows() [][]any {
	rows := [][]any{
		{"TEAM REPORT", r.Team.Name},
		{},
		{"PERFORMANCE METRICS"},
		{"Matches Played", r.Metrics.MatchesPlayed},
		{"Matches Won", r.Metrics.MatchesWon},
		{"Win Percentage", percent(r.Metrics.WinPercentage)},
		{"Set Win Percentage", percent(r.Metrics.SetWinPercentage)},
		{},
		{"RECENT MATCHES"},
	}
	if len(r.RecentMatches) > 0 {
		rows = append(rows, []any{"Date", "Opponent", "Sets Won", "Sets Lost", "Result"})
		for _, m := range r.RecentMatches {
			rows = append(rows, []any{FormatDate(m.Date), m.Opponent, m.SetsWon, m.SetsLost, m.Result()})
		}
	}
	rows = append(rows, []any{}, []any{"TOP PERFORMERS"})
	if len(r.TopPerformers) > 0 {
		rows = append(rows, []any{"Name", "Position", "Total Kills", "Total Blocks", "Total Aces"})
		for _, p := range r.TopPerformers {
			rows = append(rows, []any{p.Name, p.Position, p.TotalKills, p.TotalBlocks, p.TotalAces})
		}
	}
	rows = append(rows, []any{}, []any{"TEAM RECOMMENDATIONS"})
	for _, rec := range r.Recommendations {
		rows = append(rows, []any{rec})
	}
	return rows
}

// Sheets lays out every tab of a comprehensive export. Tables with no
// records are omitted; the summary is always present.
func (s Snapshot) Sheets(generatedAt time.Time, runID string) map[string][][]any {
	sheets := map[string][][]any{
		SheetSummary: {
			{"VOLLEYSTAT - COMPREHENSIVE REPORT"},
			{"Generated on: " + generatedAt.Format("2006-01-02 15:04:05")},
			{"Export run: " + runID},
			{},
			{"Category", "Count"},
			{"Teams", len(s.Teams)},
			{"Players", len(s.Players)},
			{"Matches", len(s.Matches)},
			{"Stats Records", len(s.Stats)},
			{"Training Sessions", len(s.Sessions)},
		},
	}

	if len(s.Teams) > 0 {
		rows := [][]any{{"Team ID", "Team Name"}}
		for _, t := range s.Teams {
			rows = append(rows, []any{t.ID, t.Name})
		}
		sheets[SheetTeams] = rows
	}
	if len(s.Players) > 0 {
		rows := [][]any{{"Player ID", "Name", "Position", "Team"}}
		for _, p := range s.Players {
			rows = append(rows, []any{p.ID, p.Name, p.Position, p.TeamName})
		}
		sheets[SheetPlayers] = rows
	}
	if len(s.Matches) > 0 {
		rows := [][]any{{"Match ID", "Team", "Opponent", "Date", "Sets Won", "Sets Lost", "Result"}}
		for _, m := range s.Matches {
			rows = append(rows, []any{m.ID, m.TeamName, m.Opponent, FormatDate(m.Date), m.SetsWon, m.SetsLost, m.Result()})
		}
		sheets[SheetMatches] = rows
	}
	if len(s.Stats) > 0 {
		rows := [][]any{{"Stat ID", "Player", "Team", "Opponent", "Match Date", "Attacks", "Kills", "Errors", "Blocks", "Digs", "Aces"}}
		for _, l := range s.Stats {
			rows = append(rows, []any{l.ID, l.PlayerName, l.TeamName, l.Opponent, FormatDate(l.MatchDate), l.Attacks, l.Kills, l.Errors, l.Blocks, l.Digs, l.Aces})
		}
		sheets[SheetStats] = rows
	}
	if len(s.Sessions) > 0 {
		rows := [][]any{{"Session ID", "Team", "Type", "Date", "Duration (min)"}}
		for _, ts := range s.Sessions {
			rows = append(rows, []any{ts.ID, ts.TeamName, string(ts.Category), FormatDate(ts.Date), ts.Duration})
		}
		sheets[SheetSessions] = rows
	}
	return sheets
}
