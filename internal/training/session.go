// Package training models practice sessions and their single-metric efficiency.
package training

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mauv0809/volleystat/internal/analytics"
	"github.com/mauv0809/volleystat/internal/club"
)

// Stat names accepted by RecordStat. Unknown names are stored but do not
// contribute to any total.
const (
	StatAttempts = "attempts"
	StatAces     = "aces"
	StatKills    = "kills"
	StatErrors   = "errors"
	StatBlocks   = "blocks"
)

var (
	defaultTargetZones = []string{"Zone 1", "Zone 5", "Zone 6"}
	defaultPositions   = []string{"Position 2", "Position 4"}
	defaultBlockTypes  = []string{"Solo", "Double"}
)

// Session is one training session of a single category. Only the
// configuration matching the category is populated.
type Session struct {
	Category    club.SessionCategory
	Date        time.Time
	Players     []int64
	Duration    int
	TargetZones []string
	Positions   []string
	BlockTypes  []string

	stats map[int64]map[string]int
}

// Option overrides part of a session's category configuration.
type Option func(*Session)

// WithTargetZones sets the zones a serving session aims at.
func WithTargetZones(zones ...string) Option {
	return func(s *Session) {
		if s.Category == club.CategoryServing && len(zones) > 0 {
			s.TargetZones = zones
		}
	}
}

// WithPositions sets the court positions an attacking session works from.
func WithPositions(positions ...string) Option {
	return func(s *Session) {
		if s.Category == club.CategoryAttacking && len(positions) > 0 {
			s.Positions = positions
		}
	}
}

// WithBlockTypes sets the block formations a blocking session drills.
func WithBlockTypes(types ...string) Option {
	return func(s *Session) {
		if s.Category == club.CategoryBlocking && len(types) > 0 {
			s.BlockTypes = types
		}
	}
}

// New builds a session for the named category.
func New(category string, date time.Time, players []int64, duration int, opts ...Option) (*Session, error) {
	c, err := club.ParseSessionCategory(category)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Category: c,
		Date:     date,
		Players:  append([]int64(nil), players...),
		Duration: duration,
		stats:    make(map[int64]map[string]int),
	}
	switch c {
	case club.CategoryServing:
		s.TargetZones = append([]string(nil), defaultTargetZones...)
	case club.CategoryAttacking:
		s.Positions = append([]string(nil), defaultPositions...)
	case club.CategoryBlocking:
		s.BlockTypes = append([]string(nil), defaultBlockTypes...)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RecordStat stores a value for a player. A later call for the same player
// and stat replaces the earlier value.
func (s *Session) RecordStat(playerID int64, name string, value int) {
	if s.stats == nil {
		s.stats = make(map[int64]map[string]int)
	}
	entries, ok := s.stats[playerID]
	if !ok {
		entries = make(map[string]int)
		s.stats[playerID] = entries
	}
	entries[strings.ToLower(name)] = value
}

// Stat returns the recorded value for a player, if any.
func (s *Session) Stat(playerID int64, name string) (int, bool) {
	v, ok := s.stats[playerID][strings.ToLower(name)]
	return v, ok
}

// RecordedPlayers lists players with at least one entry, in ascending order.
func (s *Session) RecordedPlayers() []int64 {
	ids := make([]int64, 0, len(s.stats))
	for id := range s.stats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Totals sums every player's entries.
func (s *Session) Totals() analytics.SessionTotals {
	var t analytics.SessionTotals
	for _, entries := range s.stats {
		t.Attempts += entries[StatAttempts]
		t.Aces += entries[StatAces]
		t.Kills += entries[StatKills]
		t.Errors += entries[StatErrors]
		t.Blocks += entries[StatBlocks]
	}
	return t
}

// Efficiency is the category's success percentage over all recorded entries.
func (s *Session) Efficiency() float64 {
	return analytics.SessionEfficiency(s.Category, s.Totals())
}

// Configuration describes the category-specific setup in one line.
func (s *Session) Configuration() string {
	switch s.Category {
	case club.CategoryServing:
		return "Target zones: " + strings.Join(s.TargetZones, ", ")
	case club.CategoryAttacking:
		return "Positions: " + strings.Join(s.Positions, ", ")
	default:
		return "Block types: " + strings.Join(s.BlockTypes, ", ")
	}
}

// Record converts the session into its persisted form.
func (s *Session) Record(teamID int64) club.TrainingSession {
	return club.TrainingSession{
		TeamID:   teamID,
		Category: s.Category,
		Date:     s.Date,
		Duration: s.Duration,
	}
}

// ParseStatFlag parses "<player>:<stat>=<value>".
func ParseStatFlag(flag string) (playerID int64, name string, value int, err error) {
	player, rest, ok := strings.Cut(flag, ":")
	if !ok {
		return 0, "", 0, fmt.Errorf("stat %q: expected <player>:<stat>=<value>", flag)
	}
	name, raw, ok := strings.Cut(rest, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return 0, "", 0, fmt.Errorf("stat %q: expected <player>:<stat>=<value>", flag)
	}
	playerID, err = strconv.ParseInt(strings.TrimSpace(player), 10, 64)
	if err != nil {
		return 0, "", 0, fmt.Errorf("stat %q: invalid player id: %w", flag, err)
	}
	value, err = strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, "", 0, fmt.Errorf("stat %q: invalid value: %w", flag, err)
	}
	if value < 0 {
		return 0, "", 0, fmt.Errorf("stat %q: %w: negative value", flag, club.ErrConstraintViolation)
	}
	return playerID, strings.ToLower(strings.TrimSpace(name)), value, nil
}
