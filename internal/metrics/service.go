package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "volleystat_mutations_total",
			Help: "The total number of records written, by entity.",
		}, []string{"entity"}),
		NotificationsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "volleystat_notifications_published_total",
			Help: "The total number of messages published on the notification bus.",
		}),
		ForwardsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "volleystat_forwards_sent_total",
			Help: "The total number of notifications successfully forwarded, by sink.",
		}, []string{"sink"}),
		ForwardsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "volleystat_forwards_failed_total",
			Help: "The total number of notifications that failed to forward, by sink.",
		}, []string{"sink"}),
		SheetCellsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "volleystat_sheet_cells_written_total",
			Help: "The total number of spreadsheet cells updated by exports.",
		}),
		SheetExportsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "volleystat_sheet_exports_failed_total",
			Help: "The total number of spreadsheet exports that failed.",
		}),
		CommandDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "volleystat_command_duration_seconds",
			Help:    "The duration of CLI commands.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "volleystat_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
		Events: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "volleystat_events_total",
			Help: "Persisted event counters accumulated across runs.",
		}, []string{"key"}),
	}

	reg.MustRegister(
		s.Mutations,
		s.NotificationsPublished,
		s.ForwardsSent,
		s.ForwardsFailed,
		s.SheetCellsWritten,
		s.SheetExportsFailed,
		s.CommandDuration,
		s.StartupTimeSeconds,
		s.Events,
	)

	return s
}

func (s *Service) IncMutation(entity string) {
	s.Mutations.WithLabelValues(entity).Inc()
}

func (s *Service) IncNotificationsPublished() {
	s.NotificationsPublished.Inc()
}

func (s *Service) IncForwardSent(sink string) {
	s.ForwardsSent.WithLabelValues(sink).Inc()
}

func (s *Service) IncForwardFailed(sink string) {
	s.ForwardsFailed.WithLabelValues(sink).Inc()
}

func (s *Service) AddSheetCellsWritten(cells int) {
	s.SheetCellsWritten.Add(float64(cells))
}

func (s *Service) IncSheetExportFailed() {
	s.SheetExportsFailed.Inc()
}

func (s *Service) ObserveCommandDuration(duration float64) {
	s.CommandDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}

// LoadEvents exposes persisted counters as the events gauge.
func (s *Service) LoadEvents(counts map[string]int) {
	for key, value := range counts {
		s.Events.WithLabelValues(key).Set(float64(value))
	}
}
