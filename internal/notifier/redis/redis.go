// Package redis forwards bus notifications to a Redis pub/sub channel.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/mauv0809/volleystat/internal/notifier"
	goredis "github.com/redis/go-redis/v9"
)

const sendTimeout = 10 * time.Second

var _ notifier.Subscriber = (*Forwarder)(nil)

// Forwarder publishes each bus message as a JSON event.
type Forwarder struct {
	client   goredis.UniversalClient
	channel  string
	metrics  metrics.Metrics
	newEvent func(string) notifier.Event
}

// Options configures the connection used by NewForwarder.
type Options struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// NewForwarder connects to Redis lazily; the first publish opens the connection.
func NewForwarder(opts Options, metrics metrics.Metrics) *Forwarder {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return NewForwarderWithClient(client, opts.Channel, metrics)
}

// NewForwarderWithClient creates a Forwarder around an existing client.
func NewForwarderWithClient(client goredis.UniversalClient, channel string, metrics metrics.Metrics) *Forwarder {
	return &Forwarder{
		client:   client,
		channel:  channel,
		metrics:  metrics,
		newEvent: notifier.NewEvent,
	}
}

// Receive publishes the message. Failures are logged and counted, never returned.
func (f *Forwarder) Receive(message string) {
	if err := f.publish(message); err != nil {
		f.metrics.IncForwardFailed(metrics.SinkRedis)
		log.Error("Failed to publish notification to Redis", "error", err, "channel", f.channel)
		return
	}
	f.metrics.IncForwardSent(metrics.SinkRedis)
}

func (f *Forwarder) publish(message string) error {
	payload, err := json.Marshal(f.newEvent(message))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	receivers, err := f.client.Publish(ctx, f.channel, string(payload)).Result()
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}
	log.Debug("Published notification to Redis", "channel", f.channel, "receivers", receivers)
	return nil
}

// Close releases the underlying connection pool.
func (f *Forwarder) Close() error {
	return f.client.Close()
}
