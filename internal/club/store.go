package club

import (
	"database/sql"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/volleystat/internal/database"
)

// New creates a new ClubStore.
func New(db *sql.DB, dialect database.Dialect) ClubStore {
	return &store{
		db:      db,
		dialect: dialect,
	}
}

// insert runs an INSERT and returns the identifier assigned by the database.
func (s *store) insert(op, query string, args ...any) (int64, error) {
	var id int64
	err := s.db.QueryRow(s.dialect.Rebind(query+" RETURNING id"), args...).Scan(&id)
	if err != nil {
		log.Error("Insert failed", "op", op, "error", err)
		return 0, gatewayFailure(op, err)
	}
	return id, nil
}

func (s *store) AddTeam(name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.insert("add team", "INSERT INTO teams (name) VALUES (?)", name)
	if err == nil {
		log.Debug("Added team", "teamID", id, "name", name)
	}
	return id, err
}

func (s *store) AddPlayer(p Player) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.insert("add player",
		"INSERT INTO players (name, position, team_id) VALUES (?, ?, ?)",
		p.Name, p.Position, p.TeamID)
	if err == nil {
		log.Debug("Added player", "playerID", id, "teamID", p.TeamID)
	}
	return id, err
}

func (s *store) AddMatch(m Match) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.insert("add match", `
		INSERT INTO matches (team_id, opponent, match_date, sets_won, sets_lost)
		VALUES (?, ?, ?, ?, ?)`,
		m.TeamID, m.Opponent, FormatDate(m.Date), m.SetsWon, m.SetsLost)
	if err == nil {
		log.Debug("Added match", "matchID", id, "teamID", m.TeamID)
	}
	return id, err
}

func (s *store) AddPlayerStat(st PlayerStat) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.insert("add player stat", `
		INSERT INTO player_stats (player_id, match_id, attacks, kills, errors, blocks, digs, aces)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		st.PlayerID, st.MatchID, st.Attacks, st.Kills, st.Errors, st.Blocks, st.Digs, st.Aces)
	if err == nil {
		log.Debug("Added player stat", "statID", id, "playerID", st.PlayerID, "matchID", st.MatchID)
	}
	return id, err
}

func (s *store) AddTrainingSession(ts TrainingSession) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.insert("add training session", `
		INSERT INTO training_sessions (team_id, session_type, session_date, duration)
		VALUES (?, ?, ?, ?)`,
		ts.TeamID, string(ts.Category), FormatDate(ts.Date), ts.Duration)
	if err == nil {
		log.Debug("Added training session", "sessionID", id, "teamID", ts.TeamID, "type", ts.Category)
	}
	return id, err
}

func (s *store) GetTeam(teamID int64) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t Team
	err := s.db.QueryRow(s.dialect.Rebind("SELECT id, name FROM teams WHERE id = ?"), teamID).Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("team", teamID)
	}
	if err != nil {
		return nil, gatewayFailure("get team", err)
	}
	return &t, nil
}

func (s *store) GetPlayer(playerID int64) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(s.dialect.Rebind(`
		SELECT p.id, p.name, p.position, p.team_id, t.name
		FROM players p
		JOIN teams t ON p.team_id = t.id
		WHERE p.id = ?`), playerID)
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("player", playerID)
	}
	if err != nil {
		return nil, gatewayFailure("get player", err)
	}
	return p, nil
}

func (s *store) GetMatch(matchID int64) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(s.dialect.Rebind(`
		SELECT m.id, m.team_id, t.name, m.opponent, m.match_date, m.sets_won, m.sets_lost
		FROM matches m
		JOIN teams t ON m.team_id = t.id
		WHERE m.id = ?`), matchID)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("match", matchID)
	}
	if err != nil {
		return nil, gatewayFailure("get match", err)
	}
	return m, nil
}

func (s *store) GetAllTeams() ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name FROM teams ORDER BY id")
	if err != nil {
		log.Error("Failed to query all teams", "error", err)
		return nil, gatewayFailure("list teams", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, gatewayFailure("scan team", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.id, p.name, p.position, p.team_id, t.name
		FROM players p
		JOIN teams t ON p.team_id = t.id
		ORDER BY p.id`)
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, gatewayFailure("list players", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, gatewayFailure("scan player", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (s *store) GetAllMatches() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryMatches("list matches", `
		SELECT m.id, m.team_id, t.name, m.opponent, m.match_date, m.sets_won, m.sets_lost
		FROM matches m
		JOIN teams t ON m.team_id = t.id
		ORDER BY m.match_date DESC, m.id DESC`)
}

func (s *store) GetTeamMatches(teamID int64, limit int) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT m.id, m.team_id, t.name, m.opponent, m.match_date, m.sets_won, m.sets_lost
		FROM matches m
		JOIN teams t ON m.team_id = t.id
		WHERE m.team_id = ?
		ORDER BY m.match_date DESC, m.id DESC`
	args := []any{teamID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.queryMatches("list team matches", query, args...)
}

func (s *store) queryMatches(op, query string, args ...any) ([]Match, error) {
	rows, err := s.db.Query(s.dialect.Rebind(query), args...)
	if err != nil {
		log.Error("Failed to query matches", "op", op, "error", err)
		return nil, gatewayFailure(op, err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, gatewayFailure(op, err)
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

const statLineColumns = `
	ps.id, ps.player_id, ps.match_id, ps.attacks, ps.kills, ps.errors, ps.blocks, ps.digs, ps.aces,
	p.name, t.name, m.opponent, m.match_date`

const statLineJoins = `
	FROM player_stats ps
	JOIN players p ON ps.player_id = p.id
	JOIN matches m ON ps.match_id = m.id
	JOIN teams t ON p.team_id = t.id`

func (s *store) GetPlayerStats(playerID int64, limit int) ([]PlayerStatLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT" + statLineColumns + statLineJoins + `
		WHERE ps.player_id = ?
		ORDER BY m.match_date DESC, ps.id DESC`
	args := []any{playerID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.queryStatLines("list player stats", query, args...)
}

func (s *store) GetAllPlayerStats() ([]PlayerStatLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryStatLines("list all player stats",
		"SELECT"+statLineColumns+statLineJoins+" ORDER BY m.match_date DESC, ps.id DESC")
}

func (s *store) queryStatLines(op, query string, args ...any) ([]PlayerStatLine, error) {
	rows, err := s.db.Query(s.dialect.Rebind(query), args...)
	if err != nil {
		log.Error("Failed to query player stats", "op", op, "error", err)
		return nil, gatewayFailure(op, err)
	}
	defer rows.Close()

	var lines []PlayerStatLine
	for rows.Next() {
		var l PlayerStatLine
		var date string
		err := rows.Scan(
			&l.ID, &l.PlayerID, &l.MatchID, &l.Attacks, &l.Kills, &l.Errors, &l.Blocks, &l.Digs, &l.Aces,
			&l.PlayerName, &l.TeamName, &l.Opponent, &date,
		)
		if err != nil {
			return nil, gatewayFailure(op, err)
		}
		if l.MatchDate, err = ParseDate(date); err != nil {
			return nil, gatewayFailure(op, err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (s *store) GetAllTrainingSessions() ([]TrainingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT ts.id, ts.team_id, t.name, ts.session_type, ts.session_date, ts.duration
		FROM training_sessions ts
		JOIN teams t ON ts.team_id = t.id
		ORDER BY ts.session_date DESC, ts.id DESC`)
	if err != nil {
		log.Error("Failed to query training sessions", "error", err)
		return nil, gatewayFailure("list training sessions", err)
	}
	defer rows.Close()

	var sessions []TrainingSession
	for rows.Next() {
		var ts TrainingSession
		var category, date string
		if err := rows.Scan(&ts.ID, &ts.TeamID, &ts.TeamName, &category, &date, &ts.Duration); err != nil {
			return nil, gatewayFailure("scan training session", err)
		}
		ts.Category = SessionCategory(category)
		if ts.Date, err = ParseDate(date); err != nil {
			return nil, gatewayFailure("scan training session", err)
		}
		sessions = append(sessions, ts)
	}
	return sessions, rows.Err()
}

// GetTopPerformers ranks a team's players by total kills.
func (s *store) GetTopPerformers(teamID int64, limit int) ([]Performer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT p.id, p.name, p.position,
			COALESCE(SUM(ps.kills), 0) AS total_kills,
			COALESCE(SUM(ps.blocks), 0) AS total_blocks,
			COALESCE(SUM(ps.aces), 0) AS total_aces
		FROM player_stats ps
		JOIN players p ON ps.player_id = p.id
		JOIN matches m ON ps.match_id = m.id
		WHERE p.team_id = ?
		GROUP BY p.id, p.name, p.position
		ORDER BY total_kills DESC, p.id ASC`
	args := []any{teamID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(s.dialect.Rebind(query), args...)
	if err != nil {
		log.Error("Failed to query top performers", "error", err, "teamID", teamID)
		return nil, gatewayFailure("top performers", err)
	}
	defer rows.Close()

	var performers []Performer
	for rows.Next() {
		var p Performer
		if err := rows.Scan(&p.PlayerID, &p.Name, &p.Position, &p.TotalKills, &p.TotalBlocks, &p.TotalAces); err != nil {
			return nil, gatewayFailure("scan performer", err)
		}
		performers = append(performers, p)
	}
	return performers, rows.Err()
}

func (s *store) GetTeamAverages(teamID int64) (TeamAverages, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var kills, blocks, aces, digs sql.NullFloat64
	err := s.db.QueryRow(s.dialect.Rebind(`
		SELECT AVG(ps.kills), AVG(ps.blocks), AVG(ps.aces), AVG(ps.digs)
		FROM player_stats ps
		JOIN players p ON ps.player_id = p.id
		WHERE p.team_id = ?`), teamID).Scan(&kills, &blocks, &aces, &digs)
	if err != nil {
		log.Error("Failed to query team averages", "error", err, "teamID", teamID)
		return TeamAverages{}, gatewayFailure("team averages", err)
	}
	return TeamAverages{
		Kills:  nullableFloat(kills),
		Blocks: nullableFloat(blocks),
		Aces:   nullableFloat(aces),
		Digs:   nullableFloat(digs),
	}, nil
}

// Clear purges every table, children first. Used to reset test data.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return gatewayFailure("clear", err)
	}

	for _, table := range []string{"player_stats", "training_sessions", "matches", "players", "teams"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return gatewayFailure("clear "+table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
		return gatewayFailure("clear", err)
	}
	log.Info("Cleared all club data")
	return nil
}

type scanner interface{ Scan(...any) error }

func scanPlayer(row scanner) (*Player, error) {
	var p Player
	var position sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &position, &p.TeamID, &p.TeamName); err != nil {
		return nil, err
	}
	p.Position = position.String
	return &p, nil
}

func scanMatch(row scanner) (*Match, error) {
	var m Match
	var date string
	if err := row.Scan(&m.ID, &m.TeamID, &m.TeamName, &m.Opponent, &date, &m.SetsWon, &m.SetsLost); err != nil {
		return nil, err
	}
	d, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	m.Date = d
	return &m, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
