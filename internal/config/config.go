package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// env maps config keys to the environment variables that set them.
var env = map[string]string{
	"database.driver":            "DB_DRIVER",
	"database.name":              "DB_NAME",
	"database.url":               "DATABASE_URL",
	"database.turso.primary_url": "TURSO_PRIMARY_URL",
	"database.turso.auth_token":  "TURSO_AUTH_TOKEN",
	"sheets.credentials_file":    "GOOGLE_CREDENTIALS_FILE",
	"sheets.spreadsheet_id":      "SPREADSHEET_ID",
	"slack.token":                "SLACK_BOT_TOKEN",
	"slack.channel_id":           "SLACK_CHANNEL_ID",
	"slack.dry_run":              "SLACK_DRY_RUN",
	"pubsub.project_id":          "GCP_PROJECT",
	"pubsub.topic":               "PUBSUB_TOPIC",
	"redis.addr":                 "REDIS_ADDR",
	"redis.password":             "REDIS_PASSWORD",
	"redis.db":                   "REDIS_DB",
	"redis.channel":              "REDIS_CHANNEL",
	"inngest.app_id":             "INNGEST_APP_ID",
	"inngest.event_key":          "INNGEST_EVENT_KEY",
	"log_level":                  "LOG_LEVEL",
}

// DefaultSubscribers are the console observers attached when none are configured.
var DefaultSubscribers = []SubscriberConfig{
	{Role: "Coach", Name: "John Smith"},
	{Role: "Player", Name: "Michael Johnson", Position: "Outside Hitter"},
	{Role: "Player", Name: "Emma Davis", Position: "Setter"},
	{Role: "Analyst", Name: "Sarah Wilson"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.name", "volleystat.db")
	v.SetDefault("pubsub.topic", "volleystat-events")
	v.SetDefault("redis.channel", "volleystat:events")
	v.SetDefault("log_level", "info")
}

// Load reads configuration from the .env file, environment variables and an
// optional YAML file. Environment variables take precedence over the file.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	v := viper.New()
	setDefaults(v)
	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		log.Debug("Loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if len(cfg.Subscribers) == 0 {
		cfg.Subscribers = append([]SubscriberConfig(nil), DefaultSubscribers...)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the database layer cannot open.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite3":
	case "libsql":
	case "postgres":
		if c.Database.URL == "" {
			return errors.New("postgres driver requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	for _, s := range c.Subscribers {
		if s.Role == "" || s.Name == "" {
			return fmt.Errorf("subscriber %+v needs a role and a name", s)
		}
	}
	return nil
}
