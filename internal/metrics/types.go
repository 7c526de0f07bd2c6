package metrics

import "github.com/prometheus/client_golang/prometheus"

// Entity labels used with IncMutation.
const (
	EntityTeam     = "team"
	EntityPlayer   = "player"
	EntityMatch    = "match"
	EntityStat     = "player_stat"
	EntityTraining = "training_session"
)

// Sink labels used with the forward counters.
const (
	SinkSlack   = "slack"
	SinkRedis   = "redis"
	SinkPubSub  = "pubsub"
	SinkInngest = "inngest"
)

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Mutations              *prometheus.CounterVec
	NotificationsPublished prometheus.Counter
	ForwardsSent           *prometheus.CounterVec
	ForwardsFailed         *prometheus.CounterVec
	SheetCellsWritten      prometheus.Counter
	SheetExportsFailed     prometheus.Counter
	CommandDuration        prometheus.Histogram
	StartupTimeSeconds     prometheus.Gauge
	Events                 *prometheus.GaugeVec
}
