package inngest

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/mauv0809/volleystat/internal/notifier"
)

var _ notifier.Subscriber = (*Forwarder)(nil)

// Forwarder sends every bus message as an Inngest event.
type Forwarder struct {
	client  InngestClient
	metrics metrics.Metrics
}

// NewForwarder creates a Forwarder.
func NewForwarder(client InngestClient, metrics metrics.Metrics) *Forwarder {
	return &Forwarder{client: client, metrics: metrics}
}

// Receive sends the event. Failures are logged and counted, never returned.
func (f *Forwarder) Receive(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	event := notifier.NewEvent(message)
	err := f.client.SendEvent(ctx, EventNotification, map[string]any{
		"id":          event.ID,
		"message":     event.Message,
		"occurred_at": event.OccurredAt.Format(time.RFC3339),
	})
	if err != nil {
		f.metrics.IncForwardFailed(metrics.SinkInngest)
		log.Error("Failed to forward notification to Inngest", "error", err)
		return
	}
	f.metrics.IncForwardSent(metrics.SinkInngest)
}
