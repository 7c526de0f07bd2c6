package tracker

import (
	"github.com/mauv0809/volleystat/internal/club"
	"github.com/mauv0809/volleystat/internal/notifier"
)

// Store defines the database operations required by the tracker.
type Store interface {
	AddTeam(name string) (int64, error)
	AddPlayer(player club.Player) (int64, error)
	AddMatch(match club.Match) (int64, error)
	AddPlayerStat(stat club.PlayerStat) (int64, error)
	AddTrainingSession(session club.TrainingSession) (int64, error)

	GetTeam(teamID int64) (*club.Team, error)
	GetPlayer(playerID int64) (*club.Player, error)
	GetMatch(matchID int64) (*club.Match, error)

	GetAllTeams() ([]club.Team, error)
	GetAllPlayers() ([]club.Player, error)
	GetAllMatches() ([]club.Match, error)
	GetAllPlayerStats() ([]club.PlayerStatLine, error)
	GetAllTrainingSessions() ([]club.TrainingSession, error)

	GetPlayerStats(playerID int64, limit int) ([]club.PlayerStatLine, error)
	GetTeamMatches(teamID int64, limit int) ([]club.Match, error)
	GetTopPerformers(teamID int64, limit int) ([]club.Performer, error)
	GetTeamAverages(teamID int64) (club.TeamAverages, error)

	Clear() error
}

// Publisher defines the notification operations required by the tracker.
type Publisher interface {
	notifier.Publisher
}
