package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/volleystat/internal/club"
	"github.com/mauv0809/volleystat/internal/config"
	"github.com/mauv0809/volleystat/internal/database"
	"github.com/mauv0809/volleystat/internal/inngest"
	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/mauv0809/volleystat/internal/notifier"
	"github.com/mauv0809/volleystat/internal/notifier/redis"
	"github.com/mauv0809/volleystat/internal/notifier/slack"
	"github.com/mauv0809/volleystat/internal/pubsub"
	"github.com/mauv0809/volleystat/internal/sheets"
	"github.com/mauv0809/volleystat/internal/tracker"
	"github.com/prometheus/client_golang/prometheus"
)

// app holds everything a command needs. close releases it in reverse order.
type app struct {
	cfg      config.Config
	db       *sql.DB
	store    club.ClubStore
	counters metrics.MetricsStore
	registry *prometheus.Registry
	service  *metrics.Service
	metrics  metrics.Metrics
	bus      *notifier.Bus
	inngest  inngest.InngestClient
	tracker  *tracker.Tracker
	closers  []func()
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{cfg: cfg}

	db, teardown, err := database.InitDB(database.Options{
		Driver:    cfg.Database.Driver,
		Name:      cfg.Database.Name,
		URL:       databaseURL(cfg.Database),
		AuthToken: cfg.Database.Turso.AuthToken,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.closers = append(a.closers, func() {
		log.Debug("Closing database connection")
		teardown()
	})
	a.db = db
	dialect := database.DialectFor(cfg.Database.Driver)

	a.store = club.New(db, dialect)
	a.counters = metrics.New(db, dialect)
	a.registry = prometheus.NewRegistry()
	a.service = metrics.NewService(a.registry)
	a.metrics = metrics.NewRecorder(a.service, a.counters)

	a.bus = notifier.New()
	for _, s := range cfg.Subscribers {
		a.bus.Subscribe(notifier.NewConsole(s.Role, s.Name, s.Position))
	}
	if err := a.attachForwarders(ctx); err != nil {
		a.close()
		return nil, err
	}

	var opts []tracker.Option
	if cfg.Sheets.Enabled() {
		sink, err := sheets.New(ctx, cfg.Sheets.CredentialsFile)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
		}
		opts = append(opts, tracker.WithSink(sink))
	}
	a.tracker = tracker.New(a.store, a.bus, a.metrics, opts...)
	return a, nil
}

func databaseURL(c config.DatabaseConfig) string {
	if c.Driver == database.DriverLibSQL {
		return c.Turso.PrimaryURL
	}
	return c.URL
}

// attachForwarders subscribes every external sink that has settings.
func (a *app) attachForwarders(ctx context.Context) error {
	cfg := a.cfg
	if cfg.Slack.Enabled() {
		a.bus.Subscribe(slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, a.metrics, cfg.Slack.DryRun))
		log.Debug("Slack forwarding enabled", "channel", cfg.Slack.ChannelID, "dry_run", cfg.Slack.DryRun)
	}
	if cfg.Redis.Enabled() {
		f := redis.NewForwarder(redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Channel:  cfg.Redis.Channel,
		}, a.metrics)
		a.bus.Subscribe(f)
		a.closers = append(a.closers, func() { _ = f.Close() })
		log.Debug("Redis forwarding enabled", "addr", cfg.Redis.Addr, "channel", cfg.Redis.Channel)
	}
	if cfg.PubSub.Enabled() {
		client, err := pubsub.New(ctx, cfg.PubSub.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to initialize pubsub: %w", err)
		}
		a.bus.Subscribe(pubsub.NewForwarder(client, cfg.PubSub.Topic, a.metrics))
		a.closers = append(a.closers, func() { _ = client.Close() })
		log.Debug("Pub/Sub forwarding enabled", "project", cfg.PubSub.ProjectID, "topic", cfg.PubSub.Topic)
	}
	if cfg.Inngest.Enabled() {
		provider, err := inngest.NewProvider(cfg.Inngest.AppID, cfg.Inngest.EventKey)
		if err != nil {
			return fmt.Errorf("failed to initialize inngest: %w", err)
		}
		client, err := inngest.New(provider, a.counters)
		if err != nil {
			return fmt.Errorf("failed to register inngest functions: %w", err)
		}
		a.inngest = client
		a.bus.Subscribe(inngest.NewForwarder(client, a.metrics))
		log.Debug("Inngest forwarding enabled", "app", cfg.Inngest.AppID)
	}
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
