package config

// Config holds all configuration for the application.
type Config struct {
	Database    DatabaseConfig     `mapstructure:"database"`
	Sheets      SheetsConfig       `mapstructure:"sheets"`
	Slack       SlackConfig        `mapstructure:"slack"`
	PubSub      PubSubConfig       `mapstructure:"pubsub"`
	Redis       RedisConfig        `mapstructure:"redis"`
	Inngest     InngestConfig      `mapstructure:"inngest"`
	LogLevel    string             `mapstructure:"log_level"`
	Subscribers []SubscriberConfig `mapstructure:"subscribers"`
}

type DatabaseConfig struct {
	Driver string      `mapstructure:"driver"`
	Name   string      `mapstructure:"name"`
	URL    string      `mapstructure:"url"`
	Turso  TursoConfig `mapstructure:"turso"`
}

type TursoConfig struct {
	PrimaryURL string `mapstructure:"primary_url"`
	AuthToken  string `mapstructure:"auth_token"`
}

type SheetsConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
}

type SlackConfig struct {
	Token     string `mapstructure:"token"`
	ChannelID string `mapstructure:"channel_id"`
	DryRun    bool   `mapstructure:"dry_run"`
}

type PubSubConfig struct {
	ProjectID string `mapstructure:"project_id"`
	Topic     string `mapstructure:"topic"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

type InngestConfig struct {
	AppID    string `mapstructure:"app_id"`
	EventKey string `mapstructure:"event_key"`
}

// SubscriberConfig describes one console observer attached to the bus.
type SubscriberConfig struct {
	Role     string `mapstructure:"role"`
	Name     string `mapstructure:"name"`
	Position string `mapstructure:"position"`
}

// Enabled reports whether Slack forwarding is configured.
func (c SlackConfig) Enabled() bool { return c.Token != "" && c.ChannelID != "" }

// Enabled reports whether Pub/Sub forwarding is configured.
func (c PubSubConfig) Enabled() bool { return c.ProjectID != "" }

// Enabled reports whether Redis forwarding is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// Enabled reports whether Inngest forwarding is configured.
func (c InngestConfig) Enabled() bool { return c.AppID != "" }

// Enabled reports whether spreadsheet exports are configured.
func (c SheetsConfig) Enabled() bool { return c.CredentialsFile != "" }
