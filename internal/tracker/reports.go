package tracker

import (
	"fmt"

	"github.com/mauv0809/volleystat/internal/analytics"
	"github.com/mauv0809/volleystat/internal/club"
	"github.com/mauv0809/volleystat/internal/report"
)

func statsOf(lines []club.PlayerStatLine) []club.PlayerStat {
	stats := make([]club.PlayerStat, len(lines))
	for i, l := range lines {
		stats[i] = l.PlayerStat
	}
	return stats
}

// PlayerMetrics computes a player's metrics over every recorded match.
func (t *Tracker) PlayerMetrics(playerID int64) (analytics.PlayerMetrics, error) {
	if _, err := t.store.GetPlayer(playerID); err != nil {
		return analytics.PlayerMetrics{}, err
	}
	return t.playerMetrics(playerID)
}

func (t *Tracker) playerMetrics(playerID int64) (analytics.PlayerMetrics, error) {
	lines, err := t.store.GetPlayerStats(playerID, 0)
	if err != nil {
		return analytics.PlayerMetrics{}, fmt.Errorf("failed to load player stats: %w", err)
	}
	return analytics.ComputePlayerMetrics(statsOf(lines)), nil
}

// TeamMetrics computes a team's metrics over every recorded match.
func (t *Tracker) TeamMetrics(teamID int64) (analytics.TeamMetrics, error) {
	if _, err := t.store.GetTeam(teamID); err != nil {
		return analytics.TeamMetrics{}, err
	}
	return t.teamMetrics(teamID)
}

func (t *Tracker) teamMetrics(teamID int64) (analytics.TeamMetrics, error) {
	matches, err := t.store.GetTeamMatches(teamID, 0)
	if err != nil {
		return analytics.TeamMetrics{}, fmt.Errorf("failed to load team matches: %w", err)
	}
	return analytics.ComputeTeamMetrics(matches), nil
}

// PlayerReport assembles a player's metrics, last five matches and advice.
func (t *Tracker) PlayerReport(playerID int64) (report.PlayerReport, error) {
	player, err := t.store.GetPlayer(playerID)
	if err != nil {
		return report.PlayerReport{}, err
	}
	m, err := t.playerMetrics(playerID)
	if err != nil {
		return report.PlayerReport{}, err
	}
	recent, err := t.store.GetPlayerStats(playerID, recentLimit)
	if err != nil {
		return report.PlayerReport{}, fmt.Errorf("failed to load recent stats: %w", err)
	}
	return report.PlayerReport{
		Player:          *player,
		Metrics:         m,
		Recent:          recent,
		Recommendations: analytics.PlayerFocus(m),
	}, nil
}

// TeamReport assembles a team's metrics, last five matches, top three players and advice.
func (t *Tracker) TeamReport(teamID int64) (report.TeamReport, error) {
	team, err := t.store.GetTeam(teamID)
	if err != nil {
		return report.TeamReport{}, err
	}
	m, err := t.teamMetrics(teamID)
	if err != nil {
		return report.TeamReport{}, err
	}
	recent, err := t.store.GetTeamMatches(teamID, recentLimit)
	if err != nil {
		return report.TeamReport{}, fmt.Errorf("failed to load recent matches: %w", err)
	}
	top, err := t.store.GetTopPerformers(teamID, topPerformersLimit)
	if err != nil {
		return report.TeamReport{}, fmt.Errorf("failed to load top performers: %w", err)
	}
	return report.TeamReport{
		Team:            *team,
		Metrics:         m,
		RecentMatches:   recent,
		TopPerformers:   top,
		Recommendations: analytics.TeamFocus(m),
	}, nil
}

// PlayerRecommendation picks a training plan for the player's weakest area.
func (t *Tracker) PlayerRecommendation(playerID int64) (report.PlayerRecommendation, error) {
	player, err := t.store.GetPlayer(playerID)
	if err != nil {
		return report.PlayerRecommendation{}, err
	}
	m, err := t.playerMetrics(playerID)
	if err != nil {
		return report.PlayerRecommendation{}, err
	}
	area := analytics.WeakestPlayerArea(m)
	return report.PlayerRecommendation{
		Player:      *player,
		Metrics:     m,
		WeakestArea: area,
		Plan:        analytics.PlayerPlan(area),
	}, nil
}

// TeamRecommendation picks a team training plan from per-line averages and
// flags teams that keep losing close sets.
func (t *Tracker) TeamRecommendation(teamID int64) (report.TeamRecommendation, error) {
	team, err := t.store.GetTeam(teamID)
	if err != nil {
		return report.TeamRecommendation{}, err
	}
	avg, err := t.store.GetTeamAverages(teamID)
	if err != nil {
		return report.TeamRecommendation{}, fmt.Errorf("failed to load team averages: %w", err)
	}
	matches, err := t.store.GetTeamMatches(teamID, 0)
	if err != nil {
		return report.TeamRecommendation{}, fmt.Errorf("failed to load team matches: %w", err)
	}

	rec := report.TeamRecommendation{Team: *team}
	if area, ok := analytics.WeakestTeamArea(avg.Kills, avg.Blocks, avg.Aces, avg.Digs); ok {
		plan := analytics.TeamPlan(area)
		rec.WeakestArea = area
		rec.Plan = &plan
	}
	if analytics.CloseSetPressure(matches) {
		endOfSet := analytics.EndOfSetPlan()
		rec.CloseSetPressure = true
		rec.EndOfSet = &endOfSet
	}
	return rec, nil
}

// Snapshot loads every table for a comprehensive export.
func (t *Tracker) Snapshot() (report.Snapshot, error) {
	var (
		s   report.Snapshot
		err error
	)
	if s.Teams, err = t.store.GetAllTeams(); err != nil {
		return s, fmt.Errorf("failed to load teams: %w", err)
	}
	if s.Players, err = t.store.GetAllPlayers(); err != nil {
		return s, fmt.Errorf("failed to load players: %w", err)
	}
	if s.Matches, err = t.store.GetAllMatches(); err != nil {
		return s, fmt.Errorf("failed to load matches: %w", err)
	}
	if s.Stats, err = t.store.GetAllPlayerStats(); err != nil {
		return s, fmt.Errorf("failed to load player stats: %w", err)
	}
	if s.Sessions, err = t.store.GetAllTrainingSessions(); err != nil {
		return s, fmt.Errorf("failed to load training sessions: %w", err)
	}
	return s, nil
}
