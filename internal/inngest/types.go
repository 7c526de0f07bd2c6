package inngest

import (
	"time"

	"github.com/inngest/inngestgo"
	"github.com/mauv0809/volleystat/internal/metrics"
)

// EventNotification is emitted for every bus message.
const EventNotification = "volleystat/notification"

const sendTimeout = 10 * time.Second

type client struct {
	inngestClient inngestgo.Client
	counters      metrics.MetricsStore
}
