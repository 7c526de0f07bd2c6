package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/volleystat/internal/analytics"
	"github.com/mauv0809/volleystat/internal/club"
	"github.com/mauv0809/volleystat/internal/database"
	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/mauv0809/volleystat/internal/notifier"
	"github.com/mauv0809/volleystat/internal/report"
	"github.com/mauv0809/volleystat/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	ensured [][]string
	writes  map[string][][]any
	failOn  string
}

func newFakeSink() *fakeSink {
	return &fakeSink{writes: make(map[string][][]any)}
}

func (f *fakeSink) EnsureSheets(_ context.Context, _ string, titles []string) (int, error) {
	f.ensured = append(f.ensured, titles)
	return len(titles), nil
}

func (f *fakeSink) WriteRows(_ context.Context, _ string, rangeRef string, rows [][]any) (int, error) {
	if rangeRef == f.failOn {
		return 0, errors.New("quota exceeded")
	}
	f.writes[rangeRef] = rows
	cells := 0
	for _, r := range rows {
		cells += len(r)
	}
	return cells, nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := club.ParseDate(s)
	require.NoError(t, err)
	return d
}

func setupMocks() (*Tracker, *club.MockStore, *notifier.Mock, *metrics.Mock) {
	store := club.NewMock()
	pub := notifier.NewMock()
	m := metrics.NewMock()
	return New(store, pub, m), store, pub, m
}

// setupTestTracker wires a tracker to an in-memory SQLite database.
func setupTestTracker(t *testing.T, opts ...Option) (*Tracker, *notifier.Mock, *metrics.Mock) {
	t.Helper()
	db, teardown, err := database.InitDB(database.Options{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(teardown)

	pub := notifier.NewMock()
	m := metrics.NewMock()
	return New(club.New(db, database.SQLite), pub, m, opts...), pub, m
}

func TestMutationsPublishAfterSuccess(t *testing.T) {
	t.Run("add team", func(t *testing.T) {
		// Setup
		tr, store, pub, m := setupMocks()
		store.AddTeamFunc = func(string) (int64, error) { return 7, nil }

		// Execute
		id, err := tr.AddTeam("McMaster Marauders")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.Equal(t, []string{"New team added: McMaster Marauders (ID: 7)"}, pub.Received())
		assert.Equal(t, 1, m.Mutations(metrics.EntityTeam))
		assert.Equal(t, 1, m.NotificationsPublished())
	})

	t.Run("add player", func(t *testing.T) {
		tr, store, pub, _ := setupMocks()

		_, err := tr.AddPlayer("Michael Johnson", "Outside Hitter", 3)

		require.NoError(t, err)
		require.Len(t, store.AddPlayerCalls, 1)
		assert.Equal(t, int64(3), store.AddPlayerCalls[0].TeamID)
		assert.Equal(t, []string{"New player added: Michael Johnson (Outside Hitter) to team 3"}, pub.Received())
	})

	t.Run("record match", func(t *testing.T) {
		tr, _, pub, m := setupMocks()

		_, err := tr.RecordMatch(1, "Western Mustangs", mustDate(t, "2025-01-15"), 3, 1)

		require.NoError(t, err)
		assert.Equal(t, []string{"New match recorded: against Western Mustangs on 2025-01-15"}, pub.Received())
		assert.Equal(t, 1, m.Mutations(metrics.EntityMatch))
	})

	t.Run("record player stats", func(t *testing.T) {
		tr, _, pub, _ := setupMocks()

		_, err := tr.RecordPlayerStats(club.PlayerStat{PlayerID: 4, MatchID: 9, Attacks: 10, Kills: 5})

		require.NoError(t, err)
		assert.Equal(t, []string{"Player stats recorded for player 4 in match 9"}, pub.Received())
	})

	t.Run("record training session", func(t *testing.T) {
		tr, store, pub, _ := setupMocks()
		session, err := training.New("Serving", mustDate(t, "2025-02-01"), []int64{1, 2}, 90)
		require.NoError(t, err)

		_, err = tr.RecordTrainingSession(1, session)

		require.NoError(t, err)
		require.Len(t, store.AddTrainingSessionCalls, 1)
		assert.Equal(t, club.CategoryServing, store.AddTrainingSessionCalls[0].Category)
		assert.Equal(t, []string{"New serving training session recorded on 2025-02-01"}, pub.Received())
	})
}

func TestMutationsRejectInvalidInput(t *testing.T) {
	t.Run("empty team name", func(t *testing.T) {
		tr, store, pub, m := setupMocks()

		_, err := tr.AddTeam("")

		assert.ErrorIs(t, err, club.ErrConstraintViolation)
		assert.Empty(t, store.AddTeamCalls)
		assert.Empty(t, pub.Received())
		assert.Equal(t, 0, m.Mutations(metrics.EntityTeam))
	})

	t.Run("negative counter", func(t *testing.T) {
		tr, store, pub, _ := setupMocks()

		_, err := tr.RecordPlayerStats(club.PlayerStat{PlayerID: 1, MatchID: 1, Kills: -1})

		assert.ErrorIs(t, err, club.ErrConstraintViolation)
		assert.Empty(t, store.AddPlayerStatCalls)
		assert.Empty(t, pub.Received())
	})

	t.Run("negative sets", func(t *testing.T) {
		tr, _, pub, _ := setupMocks()

		_, err := tr.RecordMatch(1, "Western Mustangs", mustDate(t, "2025-01-15"), -1, 3)

		assert.ErrorIs(t, err, club.ErrConstraintViolation)
		assert.Empty(t, pub.Received())
	})

	t.Run("missing session", func(t *testing.T) {
		tr, _, _, _ := setupMocks()

		_, err := tr.RecordTrainingSession(1, nil)

		assert.ErrorIs(t, err, club.ErrConstraintViolation)
	})
}

func TestMutationsRequireExistingReferences(t *testing.T) {
	t.Run("unknown team", func(t *testing.T) {
		tr, store, pub, _ := setupMocks()
		store.GetTeamFunc = func(id int64) (*club.Team, error) {
			return nil, club.ErrNotFound
		}

		_, err := tr.AddPlayer("Emma Davis", "Setter", 99)

		assert.ErrorIs(t, err, club.ErrNotFound)
		assert.Empty(t, store.AddPlayerCalls)
		assert.Empty(t, pub.Received())
	})

	t.Run("unknown match", func(t *testing.T) {
		tr, store, pub, _ := setupMocks()
		store.GetMatchFunc = func(id int64) (*club.Match, error) {
			return nil, club.ErrNotFound
		}

		_, err := tr.RecordPlayerStats(club.PlayerStat{PlayerID: 1, MatchID: 42})

		assert.ErrorIs(t, err, club.ErrNotFound)
		assert.Empty(t, store.AddPlayerStatCalls)
		assert.Empty(t, pub.Received())
	})

	t.Run("gateway failure", func(t *testing.T) {
		tr, store, pub, m := setupMocks()
		store.AddTeamFunc = func(string) (int64, error) {
			return 0, club.ErrGatewayFailure
		}

		_, err := tr.AddTeam("Western Mustangs")

		assert.ErrorIs(t, err, club.ErrGatewayFailure)
		assert.Empty(t, pub.Received())
		assert.Equal(t, 0, m.NotificationsPublished())
	})
}

func TestTeamRecommendation(t *testing.T) {
	t.Run("no stat lines yields no plan", func(t *testing.T) {
		tr, _, _, _ := setupMocks()

		rec, err := tr.TeamRecommendation(1)

		require.NoError(t, err)
		assert.Nil(t, rec.Plan)
		assert.Empty(t, rec.WeakestArea)
		assert.False(t, rec.CloseSetPressure)
	})

	t.Run("close set losses add end of set plan", func(t *testing.T) {
		tr, store, _, _ := setupMocks()
		store.GetTeamMatchesFunc = func(int64, int) ([]club.Match, error) {
			return []club.Match{{TeamID: 1, Opponent: "Western Mustangs", SetsWon: 1, SetsLost: 1}}, nil
		}

		rec, err := tr.TeamRecommendation(1)

		require.NoError(t, err)
		assert.True(t, rec.CloseSetPressure)
		require.NotNil(t, rec.EndOfSet)
		assert.Equal(t, analytics.EndOfSetPlan(), *rec.EndOfSet)
	})
}

func TestEndToEnd(t *testing.T) {
	// Setup
	tr, pub, m := setupTestTracker(t)

	teamID, err := tr.AddTeam("McMaster Marauders")
	require.NoError(t, err)
	playerID, err := tr.AddPlayer("Michael Johnson", "Outside Hitter", teamID)
	require.NoError(t, err)
	matchID, err := tr.RecordMatch(teamID, "Western Mustangs", mustDate(t, "2025-01-15"), 3, 1)
	require.NoError(t, err)
	_, err = tr.RecordPlayerStats(club.PlayerStat{
		PlayerID: playerID, MatchID: matchID,
		Attacks: 30, Kills: 12, Errors: 3, Blocks: 2, Digs: 5, Aces: 1,
	})
	require.NoError(t, err)

	t.Run("notifications in order", func(t *testing.T) {
		assert.Len(t, pub.Received(), 4)
		assert.Equal(t, 4, m.NotificationsPublished())
	})

	t.Run("player metrics", func(t *testing.T) {
		pm, err := tr.PlayerMetrics(playerID)
		require.NoError(t, err)
		assert.Equal(t, analytics.PlayerMetrics{AttackingEfficiency: 30, BlockingAverage: 2, ServingAces: 1}, pm)
	})

	t.Run("team report", func(t *testing.T) {
		r, err := tr.TeamReport(teamID)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Metrics.MatchesPlayed)
		assert.Equal(t, 100.0, r.Metrics.WinPercentage)
		assert.Equal(t, 75.0, r.Metrics.SetWinPercentage)
		require.Len(t, r.TopPerformers, 1)
		assert.Equal(t, 12, r.TopPerformers[0].TotalKills)
	})

	t.Run("player recommendation", func(t *testing.T) {
		rec, err := tr.PlayerRecommendation(playerID)
		require.NoError(t, err)
		assert.Equal(t, analytics.AreaServing, rec.WeakestArea)
		assert.Equal(t, analytics.PlayerPlan(analytics.AreaServing), rec.Plan)
	})

	t.Run("team recommendation", func(t *testing.T) {
		rec, err := tr.TeamRecommendation(teamID)
		require.NoError(t, err)
		assert.Equal(t, analytics.AreaServing, rec.WeakestArea)
		require.NotNil(t, rec.Plan)
		assert.False(t, rec.CloseSetPressure)
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := tr.PlayerReport(999)
		assert.ErrorIs(t, err, club.ErrNotFound)
	})

	t.Run("reset", func(t *testing.T) {
		require.NoError(t, tr.Reset())
		s, err := tr.Snapshot()
		require.NoError(t, err)
		assert.Empty(t, s.Teams)
		assert.Empty(t, s.Stats)
	})
}

func TestExports(t *testing.T) {
	ctx := context.Background()

	t.Run("without sink", func(t *testing.T) {
		tr, _, _ := setupTestTracker(t)
		_, err := tr.ExportAll(ctx, "sheet-id")
		assert.ErrorIs(t, err, ErrNoSink)
	})

	t.Run("player report", func(t *testing.T) {
		sink := newFakeSink()
		tr, _, m := setupTestTracker(t, WithSink(sink))
		teamID, err := tr.AddTeam("Western Mustangs")
		require.NoError(t, err)
		playerID, err := tr.AddPlayer("Emma Davis", "Setter", teamID)
		require.NoError(t, err)

		cells, err := tr.ExportPlayerReport(ctx, "sheet-id", playerID)

		require.NoError(t, err)
		assert.Positive(t, cells)
		assert.Contains(t, sink.writes, "Player_1!A1")
		assert.Equal(t, cells, m.SheetCellsWritten())
	})

	t.Run("all tables", func(t *testing.T) {
		sink := newFakeSink()
		tr, _, m := setupTestTracker(t, WithSink(sink))
		teamID, err := tr.AddTeam("McMaster Marauders")
		require.NoError(t, err)
		_, err = tr.AddPlayer("Brandon Chen", "Middle Blocker", teamID)
		require.NoError(t, err)

		total, err := tr.ExportAll(ctx, "sheet-id")

		require.NoError(t, err)
		require.Len(t, sink.ensured, 1)
		assert.Equal(t, report.SheetTitles, sink.ensured[0])
		assert.Contains(t, sink.writes, "Teams!A1")
		assert.Contains(t, sink.writes, "Players!A1")
		assert.Contains(t, sink.writes, "Summary!A1")
		assert.NotContains(t, sink.writes, "Matches!A1")
		assert.Equal(t, total, m.SheetCellsWritten())
	})

	t.Run("write failure is counted", func(t *testing.T) {
		sink := newFakeSink()
		sink.failOn = "Summary!A1"
		tr, _, m := setupTestTracker(t, WithSink(sink))

		_, err := tr.ExportAll(ctx, "sheet-id")

		assert.Error(t, err)
		assert.Equal(t, 1, m.SheetExportsFailed())
	})
}
