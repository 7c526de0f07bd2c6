package club

import "sync"

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddTeamFunc                func(name string) (int64, error)
	AddPlayerFunc              func(player Player) (int64, error)
	AddMatchFunc               func(match Match) (int64, error)
	AddPlayerStatFunc          func(stat PlayerStat) (int64, error)
	AddTrainingSessionFunc     func(session TrainingSession) (int64, error)
	GetTeamFunc                func(teamID int64) (*Team, error)
	GetPlayerFunc              func(playerID int64) (*Player, error)
	GetMatchFunc               func(matchID int64) (*Match, error)
	GetAllTeamsFunc            func() ([]Team, error)
	GetAllPlayersFunc          func() ([]Player, error)
	GetAllMatchesFunc          func() ([]Match, error)
	GetAllPlayerStatsFunc      func() ([]PlayerStatLine, error)
	GetAllTrainingSessionsFunc func() ([]TrainingSession, error)
	GetPlayerStatsFunc         func(playerID int64, limit int) ([]PlayerStatLine, error)
	GetTeamMatchesFunc         func(teamID int64, limit int) ([]Match, error)
	GetTopPerformersFunc       func(teamID int64, limit int) ([]Performer, error)
	GetTeamAveragesFunc        func(teamID int64) (TeamAverages, error)
	ClearFunc                  func() error

	// Call records
	AddTeamCalls            []string
	AddPlayerCalls          []Player
	AddMatchCalls           []Match
	AddPlayerStatCalls      []PlayerStat
	AddTrainingSessionCalls []TrainingSession
	ClearCalls              int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddTeamCalls = nil
	m.AddPlayerCalls = nil
	m.AddMatchCalls = nil
	m.AddPlayerStatCalls = nil
	m.AddTrainingSessionCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) AddTeam(name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddTeamCalls = append(m.AddTeamCalls, name)
	if m.AddTeamFunc != nil {
		return m.AddTeamFunc(name)
	}
	return int64(len(m.AddTeamCalls)), nil
}

func (m *MockStore) AddPlayer(player Player) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, player)
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(player)
	}
	return int64(len(m.AddPlayerCalls)), nil
}

func (m *MockStore) AddMatch(match Match) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddMatchCalls = append(m.AddMatchCalls, match)
	if m.AddMatchFunc != nil {
		return m.AddMatchFunc(match)
	}
	return int64(len(m.AddMatchCalls)), nil
}

func (m *MockStore) AddPlayerStat(stat PlayerStat) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerStatCalls = append(m.AddPlayerStatCalls, stat)
	if m.AddPlayerStatFunc != nil {
		return m.AddPlayerStatFunc(stat)
	}
	return int64(len(m.AddPlayerStatCalls)), nil
}

func (m *MockStore) AddTrainingSession(session TrainingSession) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddTrainingSessionCalls = append(m.AddTrainingSessionCalls, session)
	if m.AddTrainingSessionFunc != nil {
		return m.AddTrainingSessionFunc(session)
	}
	return int64(len(m.AddTrainingSessionCalls)), nil
}

func (m *MockStore) GetTeam(teamID int64) (*Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(teamID)
	}
	return &Team{ID: teamID, Name: "Mock Team"}, nil
}

func (m *MockStore) GetPlayer(playerID int64) (*Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return &Player{ID: playerID, Name: "Mock Player", TeamID: 1}, nil
}

func (m *MockStore) GetMatch(matchID int64) (*Match, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return &Match{ID: matchID, TeamID: 1, Opponent: "Mock Opponent"}, nil
}

func (m *MockStore) GetAllTeams() ([]Team, error) {
	if m.GetAllTeamsFunc != nil {
		return m.GetAllTeamsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetAllPlayers() ([]Player, error) {
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) GetAllMatches() ([]Match, error) {
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) GetAllPlayerStats() ([]PlayerStatLine, error) {
	if m.GetAllPlayerStatsFunc != nil {
		return m.GetAllPlayerStatsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetAllTrainingSessions() ([]TrainingSession, error) {
	if m.GetAllTrainingSessionsFunc != nil {
		return m.GetAllTrainingSessionsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetPlayerStats(playerID int64, limit int) ([]PlayerStatLine, error) {
	if m.GetPlayerStatsFunc != nil {
		return m.GetPlayerStatsFunc(playerID, limit)
	}
	return nil, nil
}

func (m *MockStore) GetTeamMatches(teamID int64, limit int) ([]Match, error) {
	if m.GetTeamMatchesFunc != nil {
		return m.GetTeamMatchesFunc(teamID, limit)
	}
	return nil, nil
}

func (m *MockStore) GetTopPerformers(teamID int64, limit int) ([]Performer, error) {
	if m.GetTopPerformersFunc != nil {
		return m.GetTopPerformersFunc(teamID, limit)
	}
	return nil, nil
}

func (m *MockStore) GetTeamAverages(teamID int64) (TeamAverages, error) {
	if m.GetTeamAveragesFunc != nil {
		return m.GetTeamAveragesFunc(teamID)
	}
	return TeamAverages{}, nil
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
