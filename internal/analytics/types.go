package analytics

// Area is a skill category used to point training at a weakness.
type Area string

const (
	AreaAttacking Area = "Attacking"
	AreaBlocking  Area = "Blocking"
	AreaServing   Area = "Serving"
	AreaDefense   Area = "Defense"
)

// PlayerMetrics summarises a player's stat lines.
type PlayerMetrics struct {
	AttackingEfficiency float64 `json:"attacking_efficiency"`
	BlockingAverage     float64 `json:"blocking_average"`
	ServingAces         int     `json:"serving_aces"`
}

// TeamMetrics summarises a team's match results.
type TeamMetrics struct {
	MatchesPlayed    int     `json:"matches_played"`
	MatchesWon       int     `json:"matches_won"`
	WinPercentage    float64 `json:"win_percentage"`
	SetWinPercentage float64 `json:"set_win_percentage"`
}

// SessionTotals are the summed per-player entries of one training session.
type SessionTotals struct {
	Attempts int `json:"attempts"`
	Aces     int `json:"aces"`
	Kills    int `json:"kills"`
	Errors   int `json:"errors"`
	Blocks   int `json:"blocks"`
}

// Plan is a training focus with optional concrete drills.
type Plan struct {
	Focus  []string `json:"focus"`
	Drills []string `json:"drills,omitempty"`
}
