package club

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	AddTeam(name string) (int64, error)
	AddPlayer(player Player) (int64, error)
	AddMatch(match Match) (int64, error)
	AddPlayerStat(stat PlayerStat) (int64, error)
	AddTrainingSession(session TrainingSession) (int64, error)

	GetTeam(teamID int64) (*Team, error)
	GetPlayer(playerID int64) (*Player, error)
	GetMatch(matchID int64) (*Match, error)

	GetAllTeams() ([]Team, error)
	GetAllPlayers() ([]Player, error)
	GetAllMatches() ([]Match, error)
	GetAllPlayerStats() ([]PlayerStatLine, error)
	GetAllTrainingSessions() ([]TrainingSession, error)

	// GetPlayerStats returns the player's stat lines, newest match first. A
	// non-positive limit returns every line.
	GetPlayerStats(playerID int64, limit int) ([]PlayerStatLine, error)
	// GetTeamMatches returns the team's matches, newest first. A non-positive
	// limit returns every match.
	GetTeamMatches(teamID int64, limit int) ([]Match, error)
	GetTopPerformers(teamID int64, limit int) ([]Performer, error)
	GetTeamAverages(teamID int64) (TeamAverages, error)

	Clear() error
}
