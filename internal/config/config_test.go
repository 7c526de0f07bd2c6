package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range env {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// Setup
		clearEnv(t)

		// Execute
		cfg, err := Load("")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "sqlite3", cfg.Database.Driver)
		assert.Equal(t, "volleystat.db", cfg.Database.Name)
		assert.Equal(t, "volleystat-events", cfg.PubSub.Topic)
		assert.Equal(t, "volleystat:events", cfg.Redis.Channel)
		assert.Equal(t, DefaultSubscribers, cfg.Subscribers)
		assert.False(t, cfg.Slack.Enabled())
		assert.False(t, cfg.Slack.DryRun)
		assert.False(t, cfg.Redis.Enabled())
	})

	t.Run("environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_NAME", "club.db")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		t.Setenv("SLACK_CHANNEL_ID", "C123")
		t.Setenv("SLACK_DRY_RUN", "true")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "club.db", cfg.Database.Name)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.True(t, cfg.Redis.Enabled())
		assert.True(t, cfg.Slack.Enabled())
		assert.True(t, cfg.Slack.DryRun)
	})

	t.Run("yaml file with environment override", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "volleystat.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
database:
  name: from-file.db
sheets:
  spreadsheet_id: sheet-123
subscribers:
  - role: Coach
    name: Coach Smith
  - role: Player
    name: Sarah Miller
    position: Libero
`), 0o600))
		t.Setenv("DB_NAME", "from-env.db")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "from-env.db", cfg.Database.Name)
		assert.Equal(t, "sheet-123", cfg.Sheets.SpreadsheetID)
		require.Len(t, cfg.Subscribers, 2)
		assert.Equal(t, SubscriberConfig{Role: "Player", Name: "Sarah Miller", Position: "Libero"}, cfg.Subscribers[1])
	})

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{Database: DatabaseConfig{Driver: "sqlite3"}, Subscribers: DefaultSubscribers}
	assert.NoError(t, valid.Validate())

	pg := valid
	pg.Database = DatabaseConfig{Driver: "postgres"}
	assert.Error(t, pg.Validate())
	pg.Database.URL = "postgres://localhost/volleystat"
	assert.NoError(t, pg.Validate())

	unknown := valid
	unknown.Database = DatabaseConfig{Driver: "mysql"}
	assert.Error(t, unknown.Validate())

	anonymous := valid
	anonymous.Subscribers = []SubscriberConfig{{Role: "Coach"}}
	assert.Error(t, anonymous.Validate())
}
