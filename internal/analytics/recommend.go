package analytics

import "github.com/mauv0809/volleystat/internal/club"

const closeSetRatioThreshold = 0.3

// PlayerFocus lists the general advice a player's metrics call for.
func PlayerFocus(m PlayerMetrics) []string {
	var focus []string
	if m.AttackingEfficiency < 20 {
		focus = append(focus, "Focus on attacking accuracy and shot selection")
	}
	if m.BlockingAverage < 1 {
		focus = append(focus, "Work on blocking technique and timing")
	}
	if m.ServingAces < 3 {
		focus = append(focus, "Practice aggressive serving with targeting")
	}
	return focus
}

// TeamFocus lists the general advice a team's results call for.
func TeamFocus(m TeamMetrics) []string {
	var focus []string
	if m.WinPercentage < 50 {
		focus = append(focus, "Focus on overall team cohesion and communication")
	}
	if m.SetWinPercentage < 40 {
		focus = append(focus, "Work on closing out sets and maintaining consistency")
	}
	return focus
}

// CloseSetPressure reports whether close losses make up a large share of the
// sets a team has played.
func CloseSetPressure(matches []club.Match) bool {
	var closeLosses, setsPlayed int
	for _, m := range matches {
		setsPlayed += m.SetsWon + m.SetsLost
		if m.SetsLost > 0 && m.SetsWon+1 >= m.SetsLost {
			closeLosses++
		}
	}
	if closeLosses == 0 || setsPlayed == 0 {
		return false
	}
	return float64(closeLosses)/float64(setsPlayed) > closeSetRatioThreshold
}

// PlayerPlan is the individual training plan for a weak area.
func PlayerPlan(area Area) Plan {
	switch area {
	case AreaAttacking:
		return Plan{
			Focus: []string{
				"Attacking precision exercises",
				"Shot selection drills",
				"Approach and timing practice",
			},
			Drills: []string{
				"Target hitting: Set up targets in different court positions",
				"Line vs cross shots: Practice both attack angles",
				"Quick attacks: Work on faster approaches and connection with setter",
			},
		}
	case AreaBlocking:
		return Plan{
			Focus: []string{
				"Blocking positioning and footwork",
				"Reading the opposing hitter",
				"Block timing exercises",
			},
			Drills: []string{
				"Shadow blocking: Follow the attacker's movement without the ball",
				"Reaction drills: Quick lateral movement across the net",
				"Block touch training: Focus on proper hand position and penetration",
			},
		}
	default:
		return Plan{
			Focus: []string{
				"Serve accuracy and consistency",
				"Strategic serving to target zones",
				"Adding more power or movement to serves",
			},
			Drills: []string{
				"Zone serving: Target specific areas of the court",
				"Pressure serving: Consecutive successful serves under pressure",
				"Service variation: Practice different types of serves",
			},
		}
	}
}

// TeamPlan is the team training plan for a weak area.
func TeamPlan(area Area) Plan {
	switch area {
	case AreaAttacking:
		return Plan{Focus: []string{
			"Offensive combinations and plays",
			"Setter-hitter connection drills",
			"Attack coverage exercises",
		}}
	case AreaBlocking:
		return Plan{Focus: []string{
			"Block timing and coordination",
			"Double block formation drills",
			"Block defense transition practice",
		}}
	case AreaServing:
		return Plan{Focus: []string{
			"Targeted service practice to exploit opponent weaknesses",
			"Service pressure drills",
			"Service and reception coordination",
		}}
	default:
		return Plan{Focus: []string{
			"Team defense formation drills",
			"Dig to target exercises",
			"Transition from defense to offense practice",
		}}
	}
}

// EndOfSetPlan is the extra plan for teams losing close sets.
func EndOfSetPlan() Plan {
	return Plan{
		Focus: []string{"End-of-Set Performance"},
		Drills: []string{
			"Pressure situation training",
			"End-game scenarios (e.g., play from 20-20)",
			"Mental toughness exercises",
		},
	}
}
