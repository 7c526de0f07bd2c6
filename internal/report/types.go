package report

import (
	"context"

	"github.com/mauv0809/volleystat/internal/analytics"
	"github.com/mauv0809/volleystat/internal/club"
)

// Sink is a spreadsheet-like destination for report rows. Cells must be
// scalars; dates are passed as ISO-8601 strings.
type Sink interface {
	WriteRows(ctx context.Context, spreadsheetID, rangeRef string, rows [][]any) (int, error)
	EnsureSheets(ctx context.Context, spreadsheetID string, titles []string) (int, error)
}

// PlayerReport is a player's metrics, recent matches and general advice.
type PlayerReport struct {
	Player          club.Player             `json:"player"`
	Metrics         analytics.PlayerMetrics `json:"metrics"`
	Recent          []club.PlayerStatLine   `json:"recent"`
	Recommendations []string                `json:"recommendations"`
}

// TeamReport is a team's metrics, recent results, best players and advice.
type TeamReport struct {
	Team            club.Team             `json:"team"`
	Metrics         analytics.TeamMetrics `json:"metrics"`
	RecentMatches   []club.Match          `json:"recent_matches"`
	TopPerformers   []club.Performer      `json:"top_performers"`
	Recommendations []string              `json:"recommendations"`
}

// PlayerRecommendation is the individual training plan for a player's weakest area.
type PlayerRecommendation struct {
	Player      club.Player             `json:"player"`
	Metrics     analytics.PlayerMetrics `json:"metrics"`
	WeakestArea analytics.Area          `json:"weakest_area"`
	Plan        analytics.Plan          `json:"plan"`
}

// TeamRecommendation is the team training plan. WeakestArea is empty when the
// team has no recorded stat lines.
type TeamRecommendation struct {
	Team             club.Team       `json:"team"`
	WeakestArea      analytics.Area  `json:"weakest_area,omitempty"`
	Plan             *analytics.Plan `json:"plan,omitempty"`
	CloseSetPressure bool            `json:"close_set_pressure"`
	EndOfSet         *analytics.Plan `json:"end_of_set,omitempty"`
}

// Snapshot holds every table for a comprehensive export.
type Snapshot struct {
	Teams    []club.Team
	Players  []club.Player
	Matches  []club.Match
	Stats    []club.PlayerStatLine
	Sessions []club.TrainingSession
}

// Sheet tab titles used by a comprehensive export, in write order.
const (
	SheetSummary  = "Summary"
	SheetTeams    = "Teams"
	SheetPlayers  = "Players"
	SheetMatches  = "Matches"
	SheetStats    = "Player Stats"
	SheetSessions = "Training Sessions"
)

// SheetTitles lists every tab a comprehensive export writes.
var SheetTitles = []string{SheetSummary, SheetTeams, SheetPlayers, SheetMatches, SheetStats, SheetSessions}
