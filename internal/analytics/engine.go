package analytics

import (
	"math"

	"github.com/mauv0809/volleystat/internal/club"
)

// Scale factors that put blocking averages and ace counts on the same footing
// as attacking efficiency when looking for a player's weakest area.
const (
	blockingScale = 25
	servingScale  = 10
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputePlayerMetrics reduces a player's stat lines. Attacking efficiency may
// be negative when errors outnumber kills.
func ComputePlayerMetrics(stats []club.PlayerStat) PlayerMetrics {
	var attacks, kills, errors, blocks, aces int
	for _, s := range stats {
		attacks += s.Attacks
		kills += s.Kills
		errors += s.Errors
		blocks += s.Blocks
		aces += s.Aces
	}

	m := PlayerMetrics{ServingAces: aces}
	if attacks > 0 {
		m.AttackingEfficiency = round2(float64(kills-errors) / float64(attacks) * 100)
	}
	if len(stats) > 0 {
		m.BlockingAverage = round2(float64(blocks) / float64(len(stats)))
	}
	return m
}

// ComputeTeamMetrics reduces a team's matches.
func ComputeTeamMetrics(matches []club.Match) TeamMetrics {
	m := TeamMetrics{MatchesPlayed: len(matches)}
	var setsWon, setsPlayed int
	for _, match := range matches {
		if match.Won() {
			m.MatchesWon++
		}
		setsWon += match.SetsWon
		setsPlayed += match.SetsWon + match.SetsLost
	}

	if m.MatchesPlayed > 0 {
		m.WinPercentage = round2(float64(m.MatchesWon) / float64(m.MatchesPlayed) * 100)
	}
	if setsPlayed > 0 {
		m.SetWinPercentage = round2(float64(setsWon) / float64(setsPlayed) * 100)
	}
	return m
}

type score struct {
	area  Area
	value float64
}

// lowest returns the first entry holding the minimum value.
func lowest(scores []score) score {
	best := scores[0]
	for _, s := range scores[1:] {
		if s.value < best.value {
			best = s
		}
	}
	return best
}

// WeakestPlayerArea picks the lowest of attacking efficiency, scaled blocking
// average and scaled aces. Ties resolve to Attacking, then Blocking.
func WeakestPlayerArea(m PlayerMetrics) Area {
	return lowest([]score{
		{AreaAttacking, m.AttackingEfficiency},
		{AreaBlocking, m.BlockingAverage * blockingScale},
		{AreaServing, float64(m.ServingAces) * servingScale},
	}).area
}

// WeakestTeamArea picks the lowest raw per-line average. A nil average is never
// chosen; the second result is false when every average is nil.
func WeakestTeamArea(avgKills, avgBlocks, avgAces, avgDigs *float64) (Area, bool) {
	value := func(v *float64) float64 {
		if v == nil {
			return math.Inf(1)
		}
		return *v
	}
	if avgKills == nil && avgBlocks == nil && avgAces == nil && avgDigs == nil {
		return "", false
	}
	return lowest([]score{
		{AreaAttacking, value(avgKills)},
		{AreaBlocking, value(avgBlocks)},
		{AreaServing, value(avgAces)},
		{AreaDefense, value(avgDigs)},
	}).area, true
}

// SessionEfficiency is the single success ratio of a training session, as a
// percentage. Zero attempts yield zero.
func SessionEfficiency(category club.SessionCategory, t SessionTotals) float64 {
	if t.Attempts == 0 {
		return 0
	}
	var successes int
	switch category {
	case club.CategoryServing:
		successes = t.Aces
	case club.CategoryAttacking:
		successes = t.Kills - t.Errors
	case club.CategoryBlocking:
		successes = t.Blocks
	default:
		return 0
	}
	return float64(successes) / float64(t.Attempts) * 100
}
