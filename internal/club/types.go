package club

import (
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/mauv0809/volleystat/internal/database"
)

// DateLayout is the ISO-8601 calendar date used for storage and exports.
const DateLayout = "2006-01-02"

// store handles all database operations for the club.
type store struct {
	db      *sql.DB
	dialect database.Dialect
	mu      sync.RWMutex
}

// Team is a volleyball team owning players, matches and training sessions.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

// Player belongs to exactly one team.
type Player struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required"`
	Position string `json:"position"`
	TeamID   int64  `json:"team_id" validate:"gt=0"`
	TeamName string `json:"team_name,omitempty"`
}

// Match is one fixture played by a team. Volleyball sets never tie.
type Match struct {
	ID       int64     `json:"id"`
	TeamID   int64     `json:"team_id" validate:"gt=0"`
	TeamName string    `json:"team_name,omitempty"`
	Opponent string    `json:"opponent" validate:"required"`
	Date     time.Time `json:"match_date"`
	SetsWon  int       `json:"sets_won" validate:"gte=0"`
	SetsLost int       `json:"sets_lost" validate:"gte=0"`
}

// Won reports whether the team took more sets than its opponent.
func (m Match) Won() bool {
	return m.SetsWon > m.SetsLost
}

// Result is the one-word outcome used in reports.
func (m Match) Result() string {
	if m.Won() {
		return "Won"
	}
	return "Lost"
}

// PlayerStat is one player's performance in one match.
type PlayerStat struct {
	ID       int64 `json:"id"`
	PlayerID int64 `json:"player_id" validate:"gt=0"`
	MatchID  int64 `json:"match_id" validate:"gt=0"`
	Attacks  int   `json:"attacks" validate:"gte=0"`
	Kills    int   `json:"kills" validate:"gte=0"`
	Errors   int   `json:"errors" validate:"gte=0"`
	Blocks   int   `json:"blocks" validate:"gte=0"`
	Digs     int   `json:"digs" validate:"gte=0"`
	Aces     int   `json:"aces" validate:"gte=0"`
}

// PlayerStatLine is a PlayerStat joined with the match it was recorded in.
type PlayerStatLine struct {
	PlayerStat
	PlayerName string    `json:"player_name,omitempty"`
	TeamName   string    `json:"team_name,omitempty"`
	Opponent   string    `json:"opponent"`
	MatchDate  time.Time `json:"match_date"`
}

// SessionCategory is the closed set of training session types.
type SessionCategory string

const (
	CategoryServing   SessionCategory = "serving"
	CategoryAttacking SessionCategory = "attacking"
	CategoryBlocking  SessionCategory = "blocking"
)

// Categories lists every session category in declaration order.
var Categories = []SessionCategory{CategoryServing, CategoryAttacking, CategoryBlocking}

// ParseSessionCategory accepts a category name in any letter case.
func ParseSessionCategory(s string) (SessionCategory, error) {
	c := SessionCategory(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryServing, CategoryAttacking, CategoryBlocking:
		return c, nil
	}
	return "", invalidCategory(s)
}

// TrainingSession is a persisted practice session.
type TrainingSession struct {
	ID       int64           `json:"id"`
	TeamID   int64           `json:"team_id" validate:"gt=0"`
	TeamName string          `json:"team_name,omitempty"`
	Category SessionCategory `json:"session_type" validate:"oneof=serving attacking blocking"`
	Date     time.Time       `json:"session_date"`
	Duration int             `json:"duration" validate:"gte=0"`
}

// Performer is a player's aggregate output across every recorded match.
type Performer struct {
	PlayerID    int64  `json:"player_id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	TotalKills  int    `json:"total_kills"`
	TotalBlocks int    `json:"total_blocks"`
	TotalAces   int    `json:"total_aces"`
}

// TeamAverages holds per-stat-line averages for a team. A nil field means no data.
type TeamAverages struct {
	Kills  *float64
	Blocks *float64
	Aces   *float64
	Digs   *float64
}

// FormatDate renders a date the way it is stored.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}
