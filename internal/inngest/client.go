package inngest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/inngest/inngestgo"
	"github.com/inngest/inngestgo/step"
	"github.com/mauv0809/volleystat/internal/metrics"
)

// NewProvider builds the underlying Inngest SDK client.
func NewProvider(appID, eventKey string) (inngestgo.Client, error) {
	return inngestgo.NewClient(inngestgo.ClientOpts{
		AppID:    appID,
		EventKey: &eventKey,
	})
}

// New creates an InngestClient. When counters is non-nil a function is
// registered that tallies delivered notifications in the persisted store.
func New(inngestClient inngestgo.Client, counters metrics.MetricsStore) (InngestClient, error) {
	c := &client{
		inngestClient: inngestClient,
		counters:      counters,
	}
	if counters != nil {
		if _, err := c.createNotificationCounter(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (i *client) createNotificationCounter() (inngestgo.ServableFunction, error) {
	config := inngestgo.FunctionOpts{
		ID:   "notification-counter",
		Name: "Count delivered notifications",
	}
	f, err := inngestgo.CreateFunction(
		i.inngestClient,
		config,
		inngestgo.EventTrigger(EventNotification, nil),
		func(ctx context.Context, input inngestgo.Input[map[string]any]) (any, error) {
			_, err := step.Run(ctx, "count-notification", func(ctx context.Context) (string, error) {
				i.counters.Increment("inngest_notifications_handled")
				return "OK", nil
			})
			if err != nil {
				return nil, err
			}
			return "OK", nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create inngest function: %w", err)
	}
	return f, nil
}

func (i *client) Serve() http.Handler {
	return i.inngestClient.Serve()
}

func (i *client) SendEvent(ctx context.Context, name string, data map[string]any) error {
	id, err := i.inngestClient.Send(ctx, inngestgo.Event{Name: name, Data: data})
	if err != nil {
		return fmt.Errorf("failed to send inngest event %s: %w", name, err)
	}
	log.Debug("Sent inngest event", "name", name, "id", id)
	return nil
}
