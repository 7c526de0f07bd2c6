package pubsub

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/mauv0809/volleystat/internal/notifier"
)

var _ notifier.Subscriber = (*Forwarder)(nil)

// Forwarder publishes bus messages to a Pub/Sub topic as msgpack events.
type Forwarder struct {
	client  PubSubClient
	topic   string
	metrics metrics.Metrics
}

// NewForwarder creates a Forwarder for topic.
func NewForwarder(client PubSubClient, topic string, metrics metrics.Metrics) *Forwarder {
	return &Forwarder{client: client, topic: topic, metrics: metrics}
}

// Receive publishes the message. Failures are logged and counted, never returned.
func (f *Forwarder) Receive(message string) {
	if err := f.client.SendMessage(f.topic, notifier.NewEvent(message)); err != nil {
		f.metrics.IncForwardFailed(metrics.SinkPubSub)
		log.Error("Failed to forward notification to Pub/Sub", "error", err, "topic", f.topic)
		return
	}
	f.metrics.IncForwardSent(metrics.SinkPubSub)
}
