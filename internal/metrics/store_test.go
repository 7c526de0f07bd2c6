package metrics

import (
	"testing"

	"github.com/mauv0809/volleystat/internal/database"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (MetricsStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(database.Options{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	return New(db, database.SQLite), teardown
}

func TestIncrementAndGetAll(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	// 1. Initially, there should be no metrics
	metrics, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, metrics)

	// 2. Increment a new key
	store.Increment("mutations_team")
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"mutations_team": 1}, metrics)

	// 3. Increment the same key again
	store.Increment("mutations_team")
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"mutations_team": 2}, metrics)

	// 4. Add to a different key
	store.Add("sheet_cells_written", 40)
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"mutations_team":      2,
		"sheet_cells_written": 40,
	}, metrics)

	// 5. Reset clears everything
	require.NoError(t, store.Reset())
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestRecorderPersistsCounters(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	live := NewMock()
	rec := NewRecorder(live, store)

	rec.IncMutation(EntityMatch)
	rec.IncMutation(EntityMatch)
	rec.IncNotificationsPublished()
	rec.IncForwardSent(SinkRedis)
	rec.IncForwardFailed(SinkSlack)
	rec.AddSheetCellsWritten(12)
	rec.IncSheetExportFailed()
	rec.ObserveCommandDuration(0.2)

	assert.Equal(t, 2, live.Mutations(EntityMatch))
	assert.Equal(t, 1, live.ForwardsFailed(SinkSlack))

	persisted, err := store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"mutations_match":         2,
		"notifications_published": 1,
		"forwards_sent_redis":     1,
		"forwards_failed_slack":   1,
		"sheet_cells_written":     12,
		"sheet_exports_failed":    1,
	}, persisted)
}

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncMutation(EntityTeam)
	s.IncForwardSent(SinkPubSub)
	s.AddSheetCellsWritten(7)
	s.LoadEvents(map[string]int{"mutations_team": 5})

	assert.Equal(t, 1.0, testutil.ToFloat64(s.Mutations.WithLabelValues(EntityTeam)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ForwardsSent.WithLabelValues(SinkPubSub)))
	assert.Equal(t, 7.0, testutil.ToFloat64(s.SheetCellsWritten))
	assert.Equal(t, 5.0, testutil.ToFloat64(s.Events.WithLabelValues("mutations_team")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
