package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against a database file in dir and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteC()
	if current != nil {
		current.close()
		current = nil
	}
	return out.String(), err
}

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_NAME", filepath.Join(t.TempDir(), "volleystat.db"))
	for _, name := range []string{"SLACK_BOT_TOKEN", "REDIS_ADDR", "GCP_PROJECT", "INNGEST_APP_ID", "GOOGLE_CREDENTIALS_FILE", "SPREADSHEET_ID", "LOG_LEVEL"} {
		t.Setenv(name, "")
	}
}

func TestCLI(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "team", "add", "McMaster Marauders")
	require.NoError(t, err)
	assert.Contains(t, out, `Team "McMaster Marauders" added with ID 1`)

	out, err = run(t, "player", "add", "Michael Johnson", "--position", "Outside Hitter", "--team", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "added with ID 1")

	_, err = run(t, "match", "add", "--team", "1", "--opponent", "Western Mustangs", "--date", "2025-01-15", "--won", "3", "--lost", "1")
	require.NoError(t, err)

	_, err = run(t, "stat", "add", "--player", "1", "--match", "1", "--attacks", "35", "--kills", "15", "--errors", "5", "--blocks", "2")
	require.NoError(t, err)

	out, err = run(t, "report", "player", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Michael Johnson")
	assert.Contains(t, out, "Western Mustangs")

	out, err = run(t, "training", "evaluate", "--type", "serving", "--date", "2025-02-01", "--stat", "1:attempts=20", "--stat", "1:aces=5")
	require.NoError(t, err)
	assert.Contains(t, out, "Efficiency: 25.00%")

	_, err = run(t, "player", "add", "Nobody", "--team", "99")
	assert.Error(t, err)

	_, err = run(t, "export", "all")
	assert.Error(t, err)

	_, err = run(t, "reset")
	assert.Error(t, err)
	_, err = run(t, "reset", "--yes")
	require.NoError(t, err)

	out, err = run(t, "metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "mutations_team")
}
