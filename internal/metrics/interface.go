package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMutation(entity string)
	IncNotificationsPublished()
	IncForwardSent(sink string)
	IncForwardFailed(sink string)
	AddSheetCellsWritten(cells int)
	IncSheetExportFailed()
	ObserveCommandDuration(duration float64)
	SetStartupTime(duration float64)
}

// MetricsStore persists event counters between runs.
type MetricsStore interface {
	Increment(key string)
	Add(key string, delta int)
	GetAll() (map[string]int, error)
	Reset() error
}
