package tracker

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/mauv0809/volleystat/internal/club"
	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/mauv0809/volleystat/internal/training"
)

// New creates a new Tracker.
func New(store Store, publisher Publisher, metrics metrics.Metrics, opts ...Option) *Tracker {
	t := &Tracker{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) check(v any) error {
	if err := t.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", club.ErrConstraintViolation, err)
	}
	return nil
}

// notify runs only after the store accepted a mutation.
func (t *Tracker) notify(entity, message string) {
	t.metrics.IncMutation(entity)
	t.publisher.Publish(message)
	t.metrics.IncNotificationsPublished()
}

// AddTeam records a new team.
func (t *Tracker) AddTeam(name string) (int64, error) {
	team := club.Team{Name: name}
	if err := t.check(team); err != nil {
		return 0, err
	}
	id, err := t.store.AddTeam(name)
	if err != nil {
		return 0, fmt.Errorf("failed to add team: %w", err)
	}
	log.Info("Team added", "teamID", id, "name", name)
	t.notify(metrics.EntityTeam, fmt.Sprintf("New team added: %s (ID: %d)", name, id))
	return id, nil
}

// AddPlayer records a new player on an existing team.
func (t *Tracker) AddPlayer(name, position string, teamID int64) (int64, error) {
	player := club.Player{Name: name, Position: position, TeamID: teamID}
	if err := t.check(player); err != nil {
		return 0, err
	}
	if _, err := t.store.GetTeam(teamID); err != nil {
		return 0, err
	}
	id, err := t.store.AddPlayer(player)
	if err != nil {
		return 0, fmt.Errorf("failed to add player: %w", err)
	}
	log.Info("Player added", "playerID", id, "teamID", teamID)
	t.notify(metrics.EntityPlayer, fmt.Sprintf("New player added: %s (%s) to team %d", name, position, teamID))
	return id, nil
}

// RecordMatch records a match played by an existing team.
func (t *Tracker) RecordMatch(teamID int64, opponent string, date time.Time, setsWon, setsLost int) (int64, error) {
	match := club.Match{TeamID: teamID, Opponent: opponent, Date: date, SetsWon: setsWon, SetsLost: setsLost}
	if err := t.check(match); err != nil {
		return 0, err
	}
	if _, err := t.store.GetTeam(teamID); err != nil {
		return 0, err
	}
	id, err := t.store.AddMatch(match)
	if err != nil {
		return 0, fmt.Errorf("failed to record match: %w", err)
	}
	log.Info("Match recorded", "matchID", id, "teamID", teamID)
	t.notify(metrics.EntityMatch, fmt.Sprintf("New match recorded: against %s on %s", opponent, club.FormatDate(date)))
	return id, nil
}

// RecordPlayerStats records one player's counters for one match.
func (t *Tracker) RecordPlayerStats(stat club.PlayerStat) (int64, error) {
	if err := t.check(stat); err != nil {
		return 0, err
	}
	if _, err := t.store.GetPlayer(stat.PlayerID); err != nil {
		return 0, err
	}
	if _, err := t.store.GetMatch(stat.MatchID); err != nil {
		return 0, err
	}
	id, err := t.store.AddPlayerStat(stat)
	if err != nil {
		return 0, fmt.Errorf("failed to record player stats: %w", err)
	}
	log.Info("Player stats recorded", "statID", id, "playerID", stat.PlayerID, "matchID", stat.MatchID)
	t.notify(metrics.EntityStat, fmt.Sprintf("Player stats recorded for player %d in match %d", stat.PlayerID, stat.MatchID))
	return id, nil
}

// RecordTrainingSession persists a classified session for an existing team.
func (t *Tracker) RecordTrainingSession(teamID int64, session *training.Session) (int64, error) {
	if session == nil {
		return 0, fmt.Errorf("%w: missing training session", club.ErrConstraintViolation)
	}
	record := session.Record(teamID)
	if err := t.check(record); err != nil {
		return 0, err
	}
	if _, err := t.store.GetTeam(teamID); err != nil {
		return 0, err
	}
	id, err := t.store.AddTrainingSession(record)
	if err != nil {
		return 0, fmt.Errorf("failed to record training session: %w", err)
	}
	log.Info("Training session recorded", "sessionID", id, "teamID", teamID, "type", session.Category, "efficiency", session.Efficiency())
	t.notify(metrics.EntityTraining, fmt.Sprintf("New %s training session recorded on %s", session.Category, club.FormatDate(session.Date)))
	return id, nil
}

// Reset purges all recorded data.
func (t *Tracker) Reset() error {
	if err := t.store.Clear(); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}
	log.Warn("All volleyball data cleared")
	return nil
}
