package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                     sync.Mutex
	mutations              map[string]int
	notificationsPublished int
	forwardsSent           map[string]int
	forwardsFailed         map[string]int
	sheetCellsWritten      int
	sheetExportsFailed     int
	commandDurations       []float64
	startupTime            float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		mutations:        make(map[string]int),
		forwardsSent:     make(map[string]int),
		forwardsFailed:   make(map[string]int),
		commandDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMutation(entity string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations[entity]++
}

func (m *Mock) IncNotificationsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationsPublished++
}

func (m *Mock) IncForwardSent(sink string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forwardsSent[sink]++
}

func (m *Mock) IncForwardFailed(sink string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forwardsFailed[sink]++
}

func (m *Mock) AddSheetCellsWritten(cells int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheetCellsWritten += cells
}

func (m *Mock) IncSheetExportFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheetExportsFailed++
}

func (m *Mock) ObserveCommandDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandDurations = append(m.commandDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Mutations returns the number of times IncMutation was called for entity.
func (m *Mock) Mutations(entity string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mutations[entity]
}

// NotificationsPublished returns the number of times IncNotificationsPublished was called.
func (m *Mock) NotificationsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notificationsPublished
}

// ForwardsSent returns the number of successful forwards to sink.
func (m *Mock) ForwardsSent(sink string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forwardsSent[sink]
}

// ForwardsFailed returns the number of failed forwards to sink.
func (m *Mock) ForwardsFailed(sink string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forwardsFailed[sink]
}

// SheetCellsWritten returns the sum passed to AddSheetCellsWritten.
func (m *Mock) SheetCellsWritten() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sheetCellsWritten
}

// SheetExportsFailed returns the number of times IncSheetExportFailed was called.
func (m *Mock) SheetExportsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sheetExportsFailed
}
