package metrics

import "fmt"

var _ Metrics = (*Recorder)(nil)

// Recorder forwards to a live Metrics implementation and also persists every
// counter increment, so totals survive between CLI invocations.
type Recorder struct {
	live  Metrics
	store MetricsStore
}

// NewRecorder wraps live metrics with a persisted store.
func NewRecorder(live Metrics, store MetricsStore) *Recorder {
	return &Recorder{live: live, store: store}
}

func (r *Recorder) IncMutation(entity string) {
	r.live.IncMutation(entity)
	r.store.Increment(fmt.Sprintf("mutations_%s", entity))
}

func (r *Recorder) IncNotificationsPublished() {
	r.live.IncNotificationsPublished()
	r.store.Increment("notifications_published")
}

func (r *Recorder) IncForwardSent(sink string) {
	r.live.IncForwardSent(sink)
	r.store.Increment(fmt.Sprintf("forwards_sent_%s", sink))
}

func (r *Recorder) IncForwardFailed(sink string) {
	r.live.IncForwardFailed(sink)
	r.store.Increment(fmt.Sprintf("forwards_failed_%s", sink))
}

func (r *Recorder) AddSheetCellsWritten(cells int) {
	r.live.AddSheetCellsWritten(cells)
	r.store.Add("sheet_cells_written", cells)
}

func (r *Recorder) IncSheetExportFailed() {
	r.live.IncSheetExportFailed()
	r.store.Increment("sheet_exports_failed")
}

// Durations are not persisted.
func (r *Recorder) ObserveCommandDuration(duration float64) {
	r.live.ObserveCommandDuration(duration)
}

func (r *Recorder) SetStartupTime(duration float64) {
	r.live.SetStartupTime(duration)
}
